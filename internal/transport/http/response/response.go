package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/domain"
)

// 错误体统一为 {"message": ...}（原实现 message/error 混用，这里收敛成一种）

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// FromError 领域错误 → HTTP 状态码；未识别的错误一律 500，不外泄内部细节
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidCredentials):
		Message(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		Message(c, http.StatusBadRequest, "invalid id")
	case errors.Is(err, domain.ErrNotFound):
		Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		Message(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrConflict):
		Message(c, http.StatusConflict, err.Error())
	default:
		Message(c, http.StatusInternalServerError, "server error")
	}
}
