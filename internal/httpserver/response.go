package httpserver

import "github.com/gin-gonic/gin"

// apiError is the uniform error envelope: a stable machine code plus a
// human-readable message.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": apiError{Code: code, Message: message}})
}
