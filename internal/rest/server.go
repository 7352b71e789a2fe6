// Package rest answers the routes that rest-kind command descriptors declare,
// and republishes the command catalog for clients. The dispatcher never calls
// into this package; it only redirects rest-kind invocations here.
package rest

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"server-aide/internal/command"
	"server-aide/internal/storage"
)

type Server struct {
	reg    *command.Registry
	store  *storage.Storage
	engine *gin.Engine
}

func New(reg *command.Registry, store *storage.Storage) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		reg:    reg,
		store:  store,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/commands", s.listCommands)
	api.GET("/config", s.getConfig)
	api.POST("/config", s.setConfig)
	api.GET("/history", s.getHistory)
	api.DELETE("/history", s.clearHistory)
	api.GET("/prompts", s.getPrompts)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled; run in a goroutine.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	log.Printf("[INFO] REST server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// listCommands republishes the full descriptor catalog, restOptions included,
// so clients can discover where each command runs.
func (s *Server) listCommands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commands": s.reg.List()})
}

func (s *Server) getConfig(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session parameter"})
		return
	}
	cfg, err := s.store.GetConfig(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

func (s *Server) setConfig(c *gin.Context) {
	var body struct {
		Session string `json:"session" binding:"required"`
		Key     string `json:"key" binding:"required"`
		Value   string `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.SetConfigValue(body.Session, body.Key, body.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getHistory(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session parameter"})
		return
	}
	history, err := s.store.History(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (s *Server) clearHistory(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session parameter"})
		return
	}
	if err := s.store.ClearHistory(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getPrompts(c *gin.Context) {
	presets, err := s.store.Prompts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if presets == nil {
		presets = []storage.PromptPreset{}
	}
	c.JSON(http.StatusOK, gin.H{"prompts": presets})
}
