package web

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hakikat011/portfolio/internal/loading"
)

// loadingProgress streams the splash-screen plan as server-sent events:
// one "progress" event per step, then "complete", then "hide".
func (s *Server) loadingProgress(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	err := s.player.Play(c.Request.Context(), func(ev loading.Event) error {
		c.SSEvent(string(ev.Kind), ev)
		c.Writer.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("loading stream stopped", zap.Error(err))
	}
}
