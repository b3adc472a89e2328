package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/mailer"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/validators"
)

type ContactHandler struct {
	mail     *mailer.Dispatcher
	notifier *mailer.Notifier
}

func NewContactHandler(mail *mailer.Dispatcher, notifier *mailer.Notifier) *ContactHandler {
	return &ContactHandler{
		mail:     mail,
		notifier: notifier,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and message are required.")
		return
	}

	if !validators.IsEmailShapeValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Valid email is required.")
		return
	}

	h.mail.Dispatch(mailer.Job{
		Name: "contact_message",
		Send: func(ctx context.Context) error {
			return h.notifier.ContactMessage(ctx, req.Name, req.Email, req.Message)
		},
	})

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
