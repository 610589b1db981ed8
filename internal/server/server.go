// Package server exposes the chat engine and the job catalog over HTTP.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hirebyte/hr-assistant/internal/catalog"
	"github.com/hirebyte/hr-assistant/internal/engine"
	"github.com/hirebyte/hr-assistant/internal/i18n"
	"github.com/hirebyte/hr-assistant/internal/ranking"
	"github.com/hirebyte/hr-assistant/internal/scoring"
	"github.com/hirebyte/hr-assistant/internal/submit"
)

type Config struct {
	DefaultLocale i18n.Locale
	// HasAIKey is surfaced by the health probe so operators can tell a
	// disabled assistant apart from a broken one.
	HasAIKey bool
}

type Server struct {
	engine    *engine.Engine
	catalog   *catalog.Catalog
	submitter submit.Service
	sessions  *sessionStore
	cfg       Config
	logger    *zap.Logger
	router    *gin.Engine
}

func New(eng *engine.Engine, cat *catalog.Catalog, submitter submit.Service, cfg Config, logger *zap.Logger) *Server {
	s := &Server{
		engine:    eng,
		catalog:   cat,
		submitter: submitter,
		sessions:  newSessionStore(sessionTTL),
		cfg:       cfg,
		logger:    logger,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/ok", s.handleOK)
	api.POST("/chat/message", s.handleChatMessage)
	api.POST("/jobs/search", s.handleJobsSearch)
	api.POST("/jobs/apply", s.handleJobsApply)
	api.POST("/apply", s.handleScoredApply)

	s.router = r
	return s
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

func (s *Server) handleOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"hasGeminiKey": s.cfg.HasAIKey,
	})
}

type chatMessageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Locale    string `json:"locale"`
	Cancel    bool   `json:"cancel"`
}

func (s *Server) handleChatMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" && !req.Cancel {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	locale := s.cfg.DefaultLocale
	if req.Locale != "" {
		locale = i18n.Match(req.Locale)
	}

	id, state, err := s.sessions.acquire(req.SessionID, locale)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "session busy, previous message still processing"})
		return
	}
	defer s.sessions.release(id)

	state.Locale = locale

	var entries []engine.Entry
	if req.Cancel {
		entries = s.engine.CancelFlow(state)
	} else {
		entries = s.engine.HandleMessage(c.Request.Context(), state, req.Message)
	}
	if entries == nil {
		entries = []engine.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId":  id,
		"locale":     locale.Code,
		"dir":        locale.Dir,
		"flowActive": state.Flow.Active,
		"entries":    entries,
	})
}

type jobsSearchRequest struct {
	Query    string `json:"q"`
	Location string `json:"location"`
}

func (s *Server) handleJobsSearch(c *gin.Context) {
	var req jobsSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	jobs := ranking.Rank(s.catalog, req.Query, req.Location)
	if jobs == nil {
		jobs = []*catalog.Posting{}
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

type jobsApplyRequest struct {
	JobID     string `json:"jobId"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ResumeURL string `json:"resumeUrl"`
	Note      string `json:"note"`
}

func (s *Server) handleJobsApply(c *gin.Context) {
	var req jobsApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	required := []struct{ field, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"resumeUrl", req.ResumeURL},
		{"title", req.Title},
		{"location", req.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": fmt.Sprintf("Missing field: %s", r.field)})
			return
		}
	}

	receipt, err := s.submitter.Submit(c.Request.Context(), &submit.Request{
		JobID:      req.JobID,
		Role:       req.Title,
		Name:       req.Name,
		Email:      req.Email,
		Location:   req.Location,
		ResumeLink: req.ResumeURL,
		Note:       req.Note,
	})
	if err != nil || !receipt.OK {
		s.logger.Error("direct application failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": receipt.ID})
}

type scoredApplyRequest struct {
	JobID  string `json:"jobId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Skills string `json:"skills"`
	Years  int    `json:"years"`
}

// handleScoredApply ranks a candidate against one posting and acknowledges
// the application with a fit score.
func (s *Server) handleScoredApply(c *gin.Context) {
	var req scoredApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	job := s.catalog.FindByID(req.JobID)
	if job == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Job not found"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing name/email"})
		return
	}

	score := scoring.Score(job, req.Skills, req.Years)
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"score":   score,
		"message": fmt.Sprintf("Thanks %s! We received your application for %s.", req.Name, job.Title),
	})
}
