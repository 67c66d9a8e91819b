package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/knoguchi/assistant/internal/broker"
	"github.com/knoguchi/assistant/internal/config"
	"github.com/knoguchi/assistant/internal/controlplane"
	"github.com/knoguchi/assistant/internal/embedder"
	"github.com/knoguchi/assistant/internal/ingest"
	"github.com/knoguchi/assistant/internal/parser"
	"github.com/knoguchi/assistant/internal/repository/postgres"
	"github.com/knoguchi/assistant/internal/vectorstore"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("failed to run worker", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("starting ingestion worker",
		"concurrency", cfg.WorkerConcurrency,
		"queue", cfg.TaskQueue,
		"environment", cfg.Environment,
	)

	// Initialize PostgreSQL
	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	slog.Info("connected to PostgreSQL")

	chunkRepo := postgres.NewChunkRepo(db)

	// Initialize the embedder; the probe discovers the vector dimension.
	embed, err := embedder.NewOllamaEmbedder(ctx, embedder.OllamaConfig{
		BaseURL: cfg.EmbeddingBaseURL,
		Model:   cfg.EmbeddingModelName,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize embedder: %w", err)
	}
	slog.Info("initialized embedder", "model", cfg.EmbeddingModelName, "dimension", embed.Dimension())

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.VectorDBHost, cfg.VectorDBPort,
		cfg.DocsCollection, cfg.CacheCollection, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to connect to Qdrant: %w", err)
	}
	defer vectorStore.Close()

	if err := vectorStore.EnsureCollections(ctx, embed.Dimension()); err != nil {
		return fmt.Errorf("failed to ensure collections: %w", err)
	}
	slog.Info("connected to Qdrant", "docs", cfg.DocsCollection, "cache", cfg.CacheCollection)

	// Initialize the control plane status client
	notifier := controlplane.New(cfg.ControlPlaneAddr, cfg.ControlPlaneTimeout, slog.Default())
	defer notifier.Close()

	// Initialize the task queue
	queue, err := broker.NewQueue(ctx, cfg.RedisURL, cfg.TaskQueue, cfg.MaxRetries, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer queue.Close()
	slog.Info("connected to Redis", "queue", cfg.TaskQueue)

	worker := ingest.New(
		parser.New(cfg.EmbeddingChunkSize, cfg.EmbeddingChunkOverlap),
		chunkRepo,
		embed,
		vectorStore,
		notifier,
		cfg.MaxFileSize,
		slog.Default(),
	)

	// Consume blocks until the context is cancelled by a signal.
	if err := queue.Consume(ctx, cfg.WorkerConcurrency, worker.Handle); err != nil && err != context.Canceled {
		return fmt.Errorf("worker error: %w", err)
	}

	slog.Info("worker stopped")
	return nil
}
