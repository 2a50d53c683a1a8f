package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/internal/mail"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Contact validates the submission, then hands it to the mail
// collaborator. A delivery failure answers 502 so clients can tell it
// apart from their own bad input.
func (h HandlerSet) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.mailer.Send(c.Request.Context(), mail.Message{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Message,
	})
	if err != nil {
		h.log.Error().Err(err).Str("name", req.Name).Msg("contact delivery failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message sent"})
}
