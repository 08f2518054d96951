// ABOUTME: HTTP JSON API for TeamUp built on chi
// ABOUTME: Wires middleware, CORS, and routes onto the application service

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Aditya-web3/hack-team-up-now/internal/logging"
	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

// UserHeader names the acting user for a request.
const UserHeader = "X-User-ID"

// Options configures the HTTP server.
type Options struct {
	Addr string
	// DefaultUser acts for requests without a UserHeader.
	DefaultUser string
	// CorsOrigins defaults to every origin.
	CorsOrigins []string
	Logger      *slog.Logger
}

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(svc *service.Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if len(opts.CorsOrigins) == 0 {
		opts.CorsOrigins = []string{"*"}
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(opts.Logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(30 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", UserHeader},
		MaxAge:         300,
	}))

	h := &handler{svc: svc, defaultUser: opts.DefaultUser, log: opts.Logger}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Get("/skills", h.listSkills)
		r.Get("/hackathons", h.listHackathons)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.searchUsers)
			r.Get("/{id}", h.getUser)
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", h.listConversations)
			r.Route("/{id}/messages", func(r chi.Router) {
				r.Get("/", h.listMessages)
				r.Post("/", h.sendMessage)
			})
		})
	})

	return &Server{
		server: &http.Server{
			Addr:              opts.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		router: router,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
