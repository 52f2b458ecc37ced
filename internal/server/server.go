package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	pulpuwebAuth "github.com/gchalakovmmi/PulpuWEB/auth"
	"github.com/gchalakovmmi/PulpuWEB/db"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/markbates/goth"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"UltraNova/internal/config"
	appAuth "UltraNova/internal/handlers/auth"
	"UltraNova/internal/handlers/catalog"
	"UltraNova/internal/handlers/chat"
	"UltraNova/internal/handlers/founder"
	"UltraNova/internal/handlers/health"
	"UltraNova/internal/handlers/home"
	"UltraNova/internal/handlers/landing"
	"UltraNova/internal/handlers/waitlist"
	"UltraNova/internal/middleware"
	"UltraNova/internal/services"
)

const sweepInterval = time.Minute

var errNoSession = errors.New("no session")

type Server struct {
	config              config.Config
	logger              *zap.Logger
	googleAuth          *pulpuwebAuth.GoogleAuth
	authHandler         *appAuth.AuthHandler
	chatHandler         *chat.ChatHandler
	waitlistHandler     *waitlist.WaitlistHandler
	founderHandler      *founder.FounderHandler
	dbConnectionDetails db.ConnectionDetails
	services            *services.Services
}

func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	// Initialize Google authentication
	authConfig, err := pulpuwebAuth.GetGoogleAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("get Google auth config: %w", err)
	}
	googleAuth := pulpuwebAuth.NewGoogleAuth(authConfig)

	// Initialize database connection details
	dbConnectionDetails, err := db.GetPostgresConfig()
	if err != nil {
		return nil, fmt.Errorf("get database config: %w", err)
	}

	svc, err := services.New(cfg)
	if err != nil {
		return nil, err
	}

	return newServer(cfg, logger, googleAuth, dbConnectionDetails, svc), nil
}

func newServer(cfg config.Config, logger *zap.Logger, googleAuth *pulpuwebAuth.GoogleAuth, details db.ConnectionDetails, svc *services.Services) *Server {
	return &Server{
		config:              cfg,
		logger:              logger,
		googleAuth:          googleAuth,
		authHandler:         appAuth.NewAuthHandler(googleAuth, svc.Issuer),
		chatHandler:         chat.NewChatHandler(svc.Responder, svc.Streamer),
		waitlistHandler:     waitlist.NewWaitlistHandler(svc.Mailer),
		founderHandler:      founder.NewFounderHandler(svc.Core, svc.Advisor),
		dbConnectionDetails: details,
		services:            svc,
	}
}

func (s *Server) sessionUser(r *http.Request) (goth.User, error) {
	session, err := s.googleAuth.GetSession(r)
	if err != nil {
		return goth.User{}, err
	}
	if session == nil {
		return goth.User{}, errNoSession
	}
	return session.User, nil
}

func (s *Server) createHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	withUser := middleware.WithUserContext(s.sessionUser)
	limiter := s.services.RateLimiter

	r.Get("/health", health.Handler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Authentication routes
	r.Get("/auth/google", s.authHandler.BeginAuthHandler)
	r.Get("/auth/google/callback", middleware.WithDB(s.dbConnectionDetails, s.authHandler.AuthCallbackHandlerWithDB))
	r.Get("/logout", s.authHandler.LogoutHandler)
	r.Method(http.MethodPost, "/auth/token",
		withUser(middleware.WithDBAndAuth(s.dbConnectionDetails, s.googleAuth, s.authHandler.IssueTokenWithDB)))

	// Pages
	r.Method(http.MethodGet, "/", s.googleAuth.WithOutGoogleAuth("/home", landing.Handler))
	r.Method(http.MethodGet, "/home", withUser(http.HandlerFunc(s.googleAuth.WithGoogleAuth(home.Handler))))
	r.Get("/team", catalog.TeamPage)
	r.Get("/decisions", catalog.DecisionsPage)
	r.Get("/roadmap", catalog.RoadmapPage)
	r.Get("/console", catalog.ConsolePage)
	r.Get("/chat", s.chatHandler.Page)
	r.With(limiter.Limit("chat")).Post("/chat", s.chatHandler.Form)
	r.Get("/waitlist", s.waitlistHandler.Page)
	r.With(limiter.Limit("waitlist")).Post("/waitlist",
		middleware.WithDB(s.dbConnectionDetails, s.waitlistHandler.FormWithDB))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/agents", catalog.ListAgents)
		r.Get("/agents/{type}", catalog.GetAgent)
		r.Get("/decisions", catalog.ListDecisions)
		r.Get("/decisions/{id}", catalog.GetDecision)
		r.Get("/roadmap", catalog.GetRoadmap)
		r.Get("/console", catalog.GetConsole)
		r.With(limiter.Limit("api_chat")).Post("/chat", s.chatHandler.Stream)
	})
	r.With(limiter.Limit("waitlist_join")).Post("/waitlist/join",
		middleware.WithDB(s.dbConnectionDetails, s.waitlistHandler.JoinWithDB))

	// Founder API, bearer token issued by /auth/token
	r.Route("/founder", func(r chi.Router) {
		r.Use(limiter.Limit("founder"))
		r.Use(s.services.Issuer.RequireBearer)
		r.Post("/think", middleware.WithDB(s.dbConnectionDetails, s.founderHandler.ThinkWithDB))
		r.Post("/chat", s.founderHandler.Chat)
	})

	r.NotFound(landing.NotFound)
	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// pending welcome emails.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.createHandler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving", zap.String("port", s.config.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down")
		err := server.Shutdown(shutdownCtx)
		s.waitlistHandler.Wait()
		return err
	})
	g.Go(func() error {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := s.services.RateLimiter.Sweep(); n > 0 {
					s.logger.Debug("rate limiter sweep", zap.Int("removed", n))
				}
			}
		}
	})
	return g.Wait()
}
