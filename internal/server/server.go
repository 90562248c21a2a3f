package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/songwish/apiserver/config"
	"github.com/songwish/apiserver/internal/db"
	"github.com/songwish/apiserver/internal/handlers"
	"github.com/songwish/apiserver/internal/llm"
	"github.com/songwish/apiserver/internal/mq"
	"github.com/songwish/apiserver/internal/services"
	"github.com/songwish/apiserver/internal/storage"
	"github.com/songwish/apiserver/internal/store"
	"github.com/songwish/apiserver/internal/tts"
	"go.mongodb.org/mongo-driver/mongo"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	mongo      *mongo.Client
	broker     *mq.MQ
}

// New constructs a Server with its collaborators wired from config.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	log := logrus.New()

	client, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	userRepo := store.NewUserRepository(db.Database(client, cfg))

	archive, err := newArchive(ctx, cfg.Storage)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	broker, err := mq.NewFromConfig(ctx, cfg.MQ)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	synth, err := tts.New(cfg.TTS)
	if err != nil {
		_ = broker.Close()
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	llmClient := llm.NewClient(cfg.LLM)

	userService := services.NewUserService(userRepo)
	lyricsService := services.NewLyricsService(userRepo, llmClient, broker, log)
	ttsService := services.NewTTSService(synth, archive, userRepo, log)

	hasTTSKey := strings.TrimSpace(cfg.TTS.APIKey) != ""

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/", handlers.Welcome)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		handlers.UserRouter(r, userService)
		handlers.LyricsRouter(r, lyricsService)
		handlers.TTSRouter(r, ttsService, hasTTSKey)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		mongo:      client,
		broker:     broker,
	}, nil
}

// newArchive builds the audio archive for the configured backend, or nil
// when archival is disabled.
func newArchive(ctx context.Context, cfg config.StorageConfig) (*storage.Archive, error) {
	var backend storage.ObjectStorage

	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "none":
		return nil, nil
	case "minio":
		client, err := storage.NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		backend = client
	case "gcs":
		client, err := storage.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		backend = client
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	archive := storage.NewArchive(backend, cfg.PublicURL)
	if err := archive.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return archive, nil
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
	if s.broker != nil {
		_ = s.broker.Close()
	}
	if s.mongo != nil {
		_ = s.mongo.Disconnect(context.Background())
	}
	return s.httpServer.Close()
}
