package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt 自带盐，同一明文两次哈希结果不同
const passwordCost = bcrypt.DefaultCost

func HashPassword(pw string) string {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), passwordCost)
	if err != nil {
		// 只有 cost 非法或明文超 72 字节才会走到这
		return ""
	}
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
