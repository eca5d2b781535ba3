package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/hakikat011/portfolio/internal/contact"
	"github.com/hakikat011/portfolio/internal/logging"
)

// HTMX contact form endpoint - returns just the form HTML
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", gin.H{
		"Form": contact.Message{},
	})
}

// Handle contact form submission with HTMX
func (s *Server) contactSubmit(c *gin.Context) {
	var msg contact.Message
	err := c.ShouldBind(&msg)
	msg = msg.Normalize()
	if err == nil {
		// Whitespace-only fields pass the first check
		err = binding.Validator.ValidateStruct(&msg)
	}
	if err != nil {
		s.metrics.contact("invalid")
		c.HTML(http.StatusUnprocessableEntity, "contact-form.html", gin.H{
			"Form":   msg,
			"Errors": contact.FieldErrors(err),
		})
		return
	}

	// Only well-formed submissions spend a token
	if !s.limiter.Allow(c.ClientIP()) {
		s.metrics.contact("rate_limited")
		_ = c.Error(contact.ErrRateLimited)
		c.HTML(http.StatusTooManyRequests, "contact-error.html", gin.H{
			"Error": contact.LimitedText,
		})
		return
	}

	receipt, err := s.submit.Submit(c.Request.Context(), msg)
	if err != nil {
		s.metrics.contact("failed")
		s.logger.Error("contact submission failed",
			zap.Error(err),
			zap.String("request_id", c.GetString(logging.RequestIDKey)),
		)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"Error": contact.FailureText,
		})
		return
	}

	s.metrics.contact("sent")
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"Success":      contact.SuccessText,
		"Receipt":      receipt.ID,
		"DismissAfter": contact.DismissAfter,
	})
}
