// Package web serves the site: the full page, the HTMX fragments that back
// each widget, the splash-screen progress stream and the operational routes.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math/rand/v2"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/hakikat011/portfolio/internal/catalog"
	"github.com/hakikat011/portfolio/internal/config"
	"github.com/hakikat011/portfolio/internal/contact"
	"github.com/hakikat011/portfolio/internal/content"
	"github.com/hakikat011/portfolio/internal/loading"
	"github.com/hakikat011/portfolio/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Deps are the collaborators the handlers render from. Zero fields are
// filled with the defaults built from the config.
type Deps struct {
	Catalog   *catalog.Catalog
	Profile   *content.Profile
	Submitter contact.Submitter
	Limiter   *contact.Limiter
	Player    *loading.Player
	Metrics   *Metrics
	Now       func() time.Time
	Rand      func() *rand.Rand
}

type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	engine  *gin.Engine
	catalog *catalog.Catalog
	profile content.Profile
	submit  contact.Submitter
	limiter *contact.Limiter
	player  *loading.Player
	metrics *Metrics
	now     func() time.Time
	rand    func() *rand.Rand
}

func New(cfg *config.Config, logger *zap.Logger, deps Deps) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		catalog: deps.Catalog,
		submit:  deps.Submitter,
		limiter: deps.Limiter,
		player:  deps.Player,
		metrics: deps.Metrics,
		now:     deps.Now,
		rand:    deps.Rand,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if deps.Profile != nil {
		s.profile = *deps.Profile
	} else {
		s.profile = content.Default()
	}
	if s.submit == nil {
		s.submit = contact.NewSimulatedSubmitter(cfg.Contact.SubmitDelay, logger)
	}
	if s.limiter == nil {
		s.limiter = contact.NewLimiter(cfg.Contact.RatePerMin, cfg.Contact.Burst)
	}
	if s.player == nil {
		s.player = loading.NewPlayer(cfg.Loading.TimeScale)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rand == nil {
		s.rand = func() *rand.Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) }
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(logging.RequestID(), logging.Middleware(logger), logging.Recovery(logger))
	r.Use(corsMiddleware(cfg.Server.CORSOrigins))
	r.Use(s.metrics.Track())
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	r.Static("/images", filepath.Join(cfg.Media.Dir, "images"))
	r.Static("/audio", filepath.Join(cfg.Media.Dir, "audio"))
	r.Static("/video", filepath.Join(cfg.Media.Dir, "video"))

	s.engine = r
	s.routes()
	return s, nil
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/", s.index)

	// Lazy-loaded sections and widget fragments
	r.GET("/sections/skills", s.skillsSection)
	r.GET("/sections/projects", s.projectsSection)
	r.GET("/sections/contact", s.contactSection)
	r.GET("/skills/:slug", s.skillTab)
	r.GET("/catalog", s.catalogResults)
	r.GET("/catalog/:id", s.catalogDetail)
	r.GET("/featured", s.featuredGrid)
	r.GET("/featured/:id", s.featuredDetail)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contactSubmit)
	r.POST("/music/toggle", s.musicToggle)
	r.GET("/loading/progress", s.loadingProgress)

	r.GET("/api/projects", s.apiProjects)

	NewHealthHandler(s.profile.Title, s.cfg.App.Version, s.catalog, s.now).RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, "Nothing lives at this path.")
	})
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"join":  strings.Join,
		"lower": strings.ToLower,
		"ms":    func(d time.Duration) int64 { return d.Milliseconds() },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// corsMiddleware allows the configured origins, or every origin when none
// are configured or "*" is among them.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "HX-Request", "HX-Target", "HX-Trigger", "HX-Current-URL"},
		ExposeHeaders: []string{logging.RequestIDKey},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || lo.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
