package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SpotiQ/cache"
	"SpotiQ/config"
	"SpotiQ/core/auth"
	"SpotiQ/core/spotify"
	"SpotiQ/db"
	"SpotiQ/logger"
	"SpotiQ/repository"
	"SpotiQ/storage"

	"github.com/gorilla/mux"
)

// NewRouter binds every route to its controller and required role. Routes
// without AuthMiddleware are open to anyone; everything else needs a valid
// bearer token.
func NewRouter(h *APIHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	// Anyone
	router.HandleFunc("/register", h.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/login", h.LoginHandler).Methods(http.MethodPost)

	// Authenticated users
	router.HandleFunc("/user", h.AuthMiddleware(h.GetUserHandler)).Methods(http.MethodGet)
	router.HandleFunc("/user", h.AuthMiddleware(h.EditUserHandler)).Methods(http.MethodPut)
	router.HandleFunc("/user", h.AuthMiddleware(h.AddPlaylistHandler)).Methods(http.MethodPost)
	router.HandleFunc("/user/{userId}", h.AuthMiddleware(h.GetUserByIDHandler)).Methods(http.MethodGet)

	router.HandleFunc("/playlist", h.AuthMiddleware(h.GetPlaylistsHandler)).Methods(http.MethodGet)
	router.HandleFunc("/playlist/{playlistId}", h.AuthMiddleware(h.GetPlaylistByIDHandler)).Methods(http.MethodGet)
	router.HandleFunc("/playlist/{playlistId}", h.AuthMiddleware(h.LikePlaylistHandler)).Methods(http.MethodPut)
	router.HandleFunc("/playlist/{playlistId}", h.AuthMiddleware(h.EditPlaylistHandler)).Methods(http.MethodPatch)

	router.HandleFunc("/search", h.AuthMiddleware(h.SearchHandler)).Methods(http.MethodGet)
	router.HandleFunc("/songs", h.AuthMiddleware(h.GetSongsHandler)).Methods(http.MethodGet)
	// Song creation gets its own route; the upstream API bound it to a
	// POST catch-all, which was a routing defect.
	router.HandleFunc("/songs", h.AuthMiddleware(h.AddSongHandler)).Methods(http.MethodPost)

	router.HandleFunc("/upload/cover", h.AuthMiddleware(h.UploadCoverHandler)).Methods(http.MethodPost)

	return router
}

// corsMiddleware permits all origins and exposes all response headers, so
// browser clients can read the Authorization header issued by /login.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Start initializes dependencies and runs the HTTP server until SIGINT or
// SIGTERM, then shuts down gracefully.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	auth.SetSecret(cfg.JWTSecret)

	if err := db.ConnectDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.DB.Close()

	if err := db.InitDB(); err != nil {
		logger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	// The playlist cache is an optimization; the server runs without Redis.
	var playlistCache *cache.PlaylistCache
	if err := db.ConnectRedis(cfg); err != nil {
		logger.Warn("Redis unavailable, playlist caching disabled", logger.ErrorField(err))
	} else {
		defer db.CloseRedis()
		playlistCache = cache.NewPlaylistCache(db.RedisClient)
	}

	// Likewise image uploads: without MinIO the endpoint answers 503.
	if err := storage.InitMinio(cfg); err != nil {
		logger.Warn("MinIO unavailable, image uploads disabled", logger.ErrorField(err))
	}

	userRepo := repository.NewMySQLUserRepository(db.DB)
	songRepo := repository.NewMySQLSongRepository(db.DB)
	playlistRepo := repository.NewMySQLPlaylistRepository(db.DB)
	service := spotify.NewService(userRepo, songRepo, playlistRepo, playlistCache)

	apiHandler := NewAPIHandler(service, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      NewRouter(apiHandler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}
