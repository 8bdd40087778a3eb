// Package server exposes characters, scale resolution and viewer sessions
// over an HTTP JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Faultbox/live2d-viewer/internal/character"
	"github.com/Faultbox/live2d-viewer/internal/config"
	"github.com/Faultbox/live2d-viewer/internal/logger"
	"github.com/Faultbox/live2d-viewer/internal/model3"
	"github.com/Faultbox/live2d-viewer/internal/session"
)

const shutdownTimeout = 5 * time.Second

// Opener loads a model handle from a settings file path.
type Opener func(path string) (session.Model, error)

// OpenModel3 opens a .model3.json (or legacy .model.json) settings file.
func OpenModel3(path string) (session.Model, error) {
	m, err := model3.Open(path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Server is the HTTP API.
type Server struct {
	cfg      *config.Config
	chars    *character.Registry
	sessions *session.Manager
	open     Opener
	log      *zap.Logger
	engine   *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithOpener replaces the model loader.
func WithOpener(open Opener) Option {
	return func(s *Server) { s.open = open }
}

// New builds the server and its routes.
func New(cfg *config.Config, chars *character.Registry, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		chars:    chars,
		sessions: sessions,
		open:     OpenModel3,
		log:      logger.Named("http"),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.Use(cors.New(s.corsConfig()))
	s.routes(r)
	s.engine = r
	return s
}

func (s *Server) corsConfig() cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	origins := s.cfg.Server.AllowOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/healthz", s.health)

	api := r.Group("/api")

	chars := api.Group("/characters")
	chars.GET("", s.listCharacters)
	chars.GET("/:id", s.getCharacter)
	chars.GET("/:id/scale", s.resolveScale)

	sess := api.Group("/sessions")
	sess.POST("", s.createSession)
	sess.GET("/:id", s.withSession(s.getSession))
	sess.DELETE("/:id", s.deleteSession)
	sess.POST("/:id/resize", s.withSession(s.resize))
	sess.POST("/:id/play", s.withSession(s.playExplicit))
	sess.POST("/:id/play/random", s.withSession(s.playRandom))
	sess.POST("/:id/play/contextual", s.withSession(s.playContextual))
	sess.POST("/:id/tap", s.withSession(s.tap))
	sess.POST("/:id/auto/start", s.withSession(s.startAuto))
	sess.POST("/:id/auto/stop", s.withSession(s.stopAuto))
	sess.PATCH("/:id/controls", s.withSession(s.updateControls))
	sess.GET("/:id/log", s.withSession(s.sessionLog))
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully and closes
// all sessions.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Listen,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.sessions.CloseAll()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.sessions.CloseAll()
	s.log.Info("server stopped")
	return err
}

// modelFile maps a public model path such as "/models/Mao/Mao.model3.json"
// to a file below the models directory. The path cannot escape it.
func (s *Server) modelFile(p string) string {
	clean := path.Clean("/" + strings.TrimSpace(p))
	return filepath.Join(s.cfg.Data.ModelsDir, filepath.FromSlash(clean))
}
