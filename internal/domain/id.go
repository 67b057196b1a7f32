package domain

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// 24 位十六进制主键，兼容原库的文档 ID 格式
var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func NewID() string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ValidID 先于任何查库校验，畸形 ID 直接 400
func ValidID(id string) bool { return idPattern.MatchString(id) }
