package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hakikat011/portfolio/internal/catalog"
	"github.com/hakikat011/portfolio/internal/contact"
	"github.com/hakikat011/portfolio/internal/music"
)

// Home page. Music always starts paused; a saved "playing" choice is reset
// so the next toggle starts playback.
func (s *Server) index(c *gin.Context) {
	state := music.State{}
	if music.FromRequest(c.Request).Playing {
		setMusicCookie(c, state)
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Profile":   s.profile,
		"Copyright": s.profile.Copyright(s.now()),
		"Music":     state,
		"Track":     music.DefaultTrack(s.profile.Media.Audio),
	})
}

func (s *Server) skillsSection(c *gin.Context) {
	c.HTML(http.StatusOK, "skills.html", gin.H{
		"Skills": s.profile.Skills,
		"Active": s.profile.Skills.Find(""),
	})
}

// Skill tab content, swapped in when a tab is selected
func (s *Server) skillTab(c *gin.Context) {
	c.HTML(http.StatusOK, "skill-tab.html", gin.H{
		"Skills": s.profile.Skills,
		"Active": s.profile.Skills.Find(c.Param("slug")),
	})
}

func (s *Server) projectsSection(c *gin.Context) {
	items := s.catalog.All()
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Featured": catalog.FeaturedProjects(),
		"Catalog":  catalogView("", catalog.CategoryAll, items),
	})
}

func (s *Server) contactSection(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Profile": s.profile,
		"Form":    contact.Message{},
	})
}

// Filtered catalog: search box and category tabs both land here
func (s *Server) catalogResults(c *gin.Context) {
	query := c.Query("q")
	category, err := catalog.ParseCategory(c.Query("category"))
	if err != nil {
		s.renderError(c, http.StatusBadRequest, "Unknown project category.")
		return
	}
	c.HTML(http.StatusOK, "catalog.html", catalogView(query, category, s.catalog.Filter(query, category)))
}

func catalogView(query string, category catalog.Category, items []catalog.Project) gin.H {
	return gin.H{
		"Query":    query,
		"Category": category,
		"Tabs":     catalog.Tabs(),
		"Groups":   catalog.Groups(items),
		"Count":    len(items),
	}
}

// Project detail modal
func (s *Server) catalogDetail(c *gin.Context) {
	p, err := s.catalog.Find(c.Param("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		s.renderError(c, http.StatusNotFound, "That project could not be found.")
		return
	}
	if err != nil {
		s.logger.Error("find project", zap.Error(err))
		s.renderError(c, http.StatusInternalServerError, "Something went wrong.")
		return
	}
	c.HTML(http.StatusOK, "project-modal.html", gin.H{"Project": p})
}

func (s *Server) featuredGrid(c *gin.Context) {
	items := catalog.FeaturedProjects()
	if c.Query("shuffle") == "1" {
		items = catalog.Shuffle(items, s.rand())
	}
	c.HTML(http.StatusOK, "featured.html", gin.H{"Featured": items})
}

func (s *Server) featuredDetail(c *gin.Context) {
	f, ok := catalog.FindFeatured(c.Param("id"))
	if !ok {
		s.renderError(c, http.StatusNotFound, "That project could not be found.")
		return
	}
	c.HTML(http.StatusOK, "featured-modal.html", gin.H{"Item": f})
}

type projectsResponse struct {
	Query    string            `json:"query"`
	Category catalog.Category  `json:"category"`
	Count    int               `json:"count"`
	Projects []catalog.Project `json:"projects"`
}

// JSON listing with the same filter semantics as the catalog fragment
func (s *Server) apiProjects(c *gin.Context) {
	query := c.Query("q")
	category, err := catalog.ParseCategory(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items := s.catalog.Filter(query, category)
	c.JSON(http.StatusOK, projectsResponse{
		Query:    query,
		Category: category,
		Count:    len(items),
		Projects: items,
	})
}

// Music button, re-rendered with the flipped state
func (s *Server) musicToggle(c *gin.Context) {
	state := music.FromRequest(c.Request).Toggle()
	setMusicCookie(c, state)
	c.HTML(http.StatusOK, "music-button.html", gin.H{"Music": state})
}

func setMusicCookie(c *gin.Context, state music.State) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(music.CookieName, state.Value(), music.CookieMaxAge, "/", "", false, false)
}

func (s *Server) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
