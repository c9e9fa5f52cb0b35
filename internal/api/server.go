package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"feedhub/internal/config"
)

type Server struct {
	feed       FeedReader
	engagement Engagement
	ads        AdTracker
	content    ContentWriter

	health  func(ctx context.Context) error
	adEvery int
	config  config.HTTPConfig
	log     zerolog.Logger
	srv     *http.Server
}

type Option func(*Server)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log.With().Str("component", "http").Logger()
	}
}

// WithHealthCheck makes /healthz report the result of check.
func WithHealthCheck(check func(ctx context.Context) error) Option {
	return func(s *Server) {
		s.health = check
	}
}

// WithAdSpacing sets the spacing used when a feed request passes ads=true.
func WithAdSpacing(every int) Option {
	return func(s *Server) {
		s.adEvery = every
	}
}

func NewServer(
	feed FeedReader,
	engagement Engagement,
	ads AdTracker,
	content ContentWriter,
	cfg config.HTTPConfig,
	opts ...Option,
) *Server {
	s := &Server{
		feed:       feed,
		engagement: engagement,
		ads:        ads,
		content:    content,
		config:     cfg,
		log:        zerolog.Nop(),
		adEvery:    5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	if s.config.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.config.RequestTimeout))
	}
	r.Use(viewer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/feed", func(r chi.Router) {
		r.Get("/", s.handleListFeed)
		r.Get("/{id}", s.handleGetFeedItem)
		r.With(requireViewer).Post("/{id}/like/toggle", s.handleToggleLike)
		r.Get("/{id}/comments", s.handleListComments)
		r.With(requireViewer).Post("/{id}/comments", s.handleAddComment)
	})
	r.With(requireViewer).Delete("/comments/{id}", s.handleRemoveComment)

	r.Route("/articles", func(r chi.Router) {
		r.Post("/", s.handleCreateArticle)
		r.Get("/{id}", s.handleGetArticle)
		r.Put("/{id}", s.handleUpdateArticle)
		r.Delete("/{id}", s.handleDeleteArticle)
	})
	r.Route("/community", func(r chi.Router) {
		r.With(requireViewer).Post("/", s.handleCreateCommunityPost)
		r.Get("/{id}", s.handleGetCommunityPost)
		r.Put("/{id}", s.handleUpdateCommunityPost)
		r.Delete("/{id}", s.handleDeleteCommunityPost)
	})
	r.Route("/ads", func(r chi.Router) {
		r.Post("/", s.handleCreateAdvertisement)
		r.Get("/{id}", s.handleGetAdvertisement)
		r.Put("/{id}", s.handleUpdateAdvertisement)
		r.Delete("/{id}", s.handleDeleteAdvertisement)
		r.Post("/{id}/impression", s.handleAdImpression)
		r.Post("/{id}/click", s.handleAdClick)
	})

	r.Post("/admin/reconcile/{type}/{originalID}", s.handleReconcile)

	return r
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.log.Info().Str("addr", s.config.Addr).Msg("http server started")

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.health(ctx); err != nil {
			s.log.Warn().Err(err).Msg("health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
