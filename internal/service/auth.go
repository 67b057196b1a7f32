package service

import (
	"context"
	"fmt"
	"strings"

	"staynest/internal/core/auth"
	"staynest/internal/domain"
	"staynest/pkg/utils"
)

// Auth 注册/登录，签发 1 小时 HS256 令牌
type Auth struct {
	users domain.UserRepository
	jwt   *auth.JWTer
}

func NewAuth(users domain.UserRepository, jwt *auth.JWTer) *Auth {
	return &Auth{users: users, jwt: jwt}
}

type AuthResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Auth) Signup(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	u := &domain.User{
		ID:           domain.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
	}
	if err := s.users.Create(u); err != nil {
		// 并发兜底：唯一冲突 → 当作重复邮箱
		if isDupKey(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	tok, err := s.jwt.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: tok}, nil
}

// Login 未知邮箱与错误密码返回同一个错误，防止账号枚举
func (s *Auth) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.jwt.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: tok}, nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique")
}
