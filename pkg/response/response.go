package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a success envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data and a message.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Resp{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// OKWithMessage sends 200 JSON with data and a message.
func OKWithMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error sends an error envelope with the given status code.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, Resp{
		Success: false,
		Error:   err.Error(),
	})
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err)
}

// NotFound sends a 404 error envelope.
func NotFound(c *gin.Context, err error) {
	Error(c, http.StatusNotFound, err)
}

// InternalError sends a 500 envelope without leaking the underlying error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   DefaultErrorMessage,
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": detail})
}
