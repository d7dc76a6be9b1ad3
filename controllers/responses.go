package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/cemerttu/backend-store-master/errors"
)

// respondError maps any error to the uniform failure envelope
// {success:false, message, error?}. The underlying error detail is included
// only outside production.
func respondError(c *gin.Context, env string, err error) {
	appErr := apperrors.From(err)

	body := gin.H{
		"success": false,
		"message": appErr.Message,
	}
	if appErr.Err != nil && env != "production" {
		body["error"] = appErr.Err.Error()
	}

	if appErr.Code >= 500 {
		zap.L().Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", appErr.Code),
			zap.Error(appErr),
		)
	}

	c.JSON(appErr.Code, body)
}
