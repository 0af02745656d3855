package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/neocontrole/authserver/config"
	"github.com/neocontrole/authserver/internal/db"
	"github.com/neocontrole/authserver/internal/handlers"
	"github.com/neocontrole/authserver/internal/seed"
	"github.com/neocontrole/authserver/internal/services"
	"github.com/neocontrole/authserver/internal/store"
)

// allowedOrigins is the fixed set of frontends permitted to call this API.
var allowedOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"https://neocontrole.vercel.app",
}

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server, connects to the database, and runs startup
// seeding. Seeding errors are fatal: the caller gets the error and the
// process should exit.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	establishmentRepo := store.NewEstablishmentRepository(dbConn)

	if err := seed.Ensure(ctx, userRepo, establishmentRepo); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	userService := services.NewUserService(userRepo)
	establishmentService := services.NewEstablishmentService(establishmentRepo)

	authMiddleware := handlers.RequireAuth(cfg.JWTSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Get("/", handlers.Root)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, establishmentService, cfg.JWTSecret)
	})
	router.Route("/users", func(r chi.Router) {
		handlers.UserRouter(r, userService, authMiddleware)
	})
	router.Route("/estabelecimentos", func(r chi.Router) {
		handlers.EstablishmentRouter(r, establishmentService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
