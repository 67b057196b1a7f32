package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/service"
	resp "staynest/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.Auth
}

func NewAuthHandler(svc *service.Auth) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Mount(public, _ *gin.RouterGroup) {
	public.POST("/auth/signup", h.signup)
	public.POST("/auth/login", h.login)
}

func (h *AuthHandler) signup(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.svc.Signup(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
