package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
)

// ContactController maps the contact-form endpoint to the contact service.
type ContactController struct {
	service ContactServiceAPI
	env     string
}

func NewContactController(service ContactServiceAPI, env string) *ContactController {
	return &ContactController{service: service, env: env}
}

// SubmitContact handles POST /api/contact.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var submission models.Contact
	if err := c.ShouldBindJSON(&submission); err != nil {
		respondError(c, cc.env, apperrors.Validation("Invalid JSON payload"))
		return
	}

	if err := cc.service.Submit(c.Request.Context(), submission); err != nil {
		respondError(c, cc.env, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for contacting us. We'll get back to you soon.",
	})
}
