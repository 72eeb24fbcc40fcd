// Package server serves the portfolio over HTTP with gin.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7411/portfolio/internal/assets"
	"github.com/priyanka7411/portfolio/internal/config"
	"github.com/priyanka7411/portfolio/internal/contact"
	"github.com/priyanka7411/portfolio/internal/content"
	"github.com/priyanka7411/portfolio/internal/session"
	"github.com/priyanka7411/portfolio/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Server is the portfolio web server.
type Server struct {
	cfg      *config.Config
	engine   *gin.Engine
	router   *view.Router
	sessions *session.Store
	contact  *contact.Handler
	assets   *assets.Cache
	logger   *slog.Logger
}

// Deps are the collaborators a Server is built from. Nil fields get
// defaults derived from the config.
type Deps struct {
	Content  *content.Store
	Assets   *assets.Cache
	Sessions *session.Store
	Contact  *contact.Handler
	Logger   *slog.Logger
	Now      func() time.Time
}

// New wires the routes for cfg.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Content == nil {
		store, err := content.New(content.Default)
		if err != nil {
			return nil, err
		}
		deps.Content = store
	}
	if deps.Assets == nil {
		deps.Assets = assets.NewCache()
	}
	if deps.Sessions == nil {
		deps.Sessions = session.NewStore(session.WithLogger(deps.Logger))
	}
	if deps.Contact == nil {
		h, err := newContactHandler(cfg, deps.Logger)
		if err != nil {
			return nil, err
		}
		deps.Contact = h
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	salt, err := newSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate hashing salt: %w", err)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static files: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(deps.Logger, salt))
	engine.SetHTMLTemplate(tmpl)
	engine.StaticFS("/static", http.FS(static))

	s := &Server{
		cfg:      cfg,
		engine:   engine,
		sessions: deps.Sessions,
		contact:  deps.Contact,
		assets:   deps.Assets,
		logger:   deps.Logger,
		router: view.NewRouter(deps.Content, deps.Assets, cfg.Resume.Path,
			view.WithClock(deps.Now), view.WithLogger(deps.Logger)),
	}
	s.routes()
	return s, nil
}

func newContactHandler(cfg *config.Config, logger *slog.Logger) (*contact.Handler, error) {
	opts := []contact.Option{contact.WithLogger(logger)}
	if smtpCfg := cfg.SMTP.Contact(); smtpCfg.Enabled() {
		d, err := contact.NewSMTPDeliverer(smtpCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to configure mail delivery: %w", err)
		}
		opts = append(opts, contact.WithDeliverer(d))
		logger.Info("contact messages will be delivered by email", "smtp_host", smtpCfg.Host)
	} else {
		logger.Info("SMTP credentials not set; contact messages are acknowledged but not sent")
	}
	return contact.NewHandler(opts...), nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"pdfDataURL": func(encoded string) template.URL {
			return template.URL("data:application/pdf;base64," + encoded)
		},
		"sectionURL": func(id session.SectionID) string {
			return "/?section=" + string(id)
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully. The idle
// session sweeper runs alongside.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.RunSweeper(sweepCtx, s.cfg.Session.SweepInterval, s.cfg.Session.IdleTimeout)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", httpServer.Addr, "mode", s.cfg.Server.Mode)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
