package server

import (
	"net/http"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope of the read endpoints
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Error: &ErrorInfo{Code: "ERR_BAD_REQUEST", Message: message}})
}

// fail maps err onto the envelope. Only configuration and validation errors
// reach the client verbatim; everything else becomes a generic 500.
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.GetGinLogger(c).Error("request failed", zap.Error(err))
		_ = c.Error(err)
		c.JSON(status, Response{Error: &ErrorInfo{Code: apperr.CodeInternal, Message: "Internal server error"}})
		return
	}

	code := apperr.CodeValidation
	if apperr.IsKind(err, apperr.KindConfiguration) {
		code = apperr.CodeConfiguration
	}
	c.JSON(status, Response{Error: &ErrorInfo{Code: code, Message: err.Error()}})
}
