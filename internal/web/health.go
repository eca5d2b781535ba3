package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hakikat011/portfolio/internal/catalog"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Site     string `json:"site"`
	Version  string `json:"version"`
	Projects int    `json:"projects"`
	Featured int    `json:"featured"`
	Uptime   string `json:"uptime"`
	Problems string `json:"problems,omitempty"`
}

// HealthHandler reports on the site and the catalog its pages render from.
type HealthHandler struct {
	site    string
	version string
	catalog *catalog.Catalog
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(site, version string, cat *catalog.Catalog, now func() time.Time) *HealthHandler {
	return &HealthHandler{
		site:    site,
		version: version,
		catalog: cat,
		started: now(),
		now:     now,
	}
}

func (h *HealthHandler) report(status string) HealthResponse {
	return HealthResponse{
		Status:   status,
		Site:     h.site,
		Version:  h.version,
		Projects: h.catalog.Len(),
		Featured: len(catalog.FeaturedProjects()),
		Uptime:   h.now().Sub(h.started).Round(time.Second).String(),
	}
}

// Live answers while the process serves requests.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, h.report("ok"))
}

// Ready also checks the catalog is still servable; a broken record is 503.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.catalog.Validate(); err != nil {
		resp := h.report("degraded")
		resp.Problems = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, h.report("ok"))
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Live)
	r.GET("/healthz", h.Ready)
}
