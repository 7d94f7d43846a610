package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应结构
// 成功响应直接返回存储的记录本身，不加包装；客户端只依赖状态码，
// message 仅作排查辅助
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
