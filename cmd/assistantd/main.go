package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/knoguchi/assistant/internal/broker"
	"github.com/knoguchi/assistant/internal/config"
	"github.com/knoguchi/assistant/internal/embedder"
	"github.com/knoguchi/assistant/internal/llm"
	"github.com/knoguchi/assistant/internal/repository"
	"github.com/knoguchi/assistant/internal/repository/postgres"
	"github.com/knoguchi/assistant/internal/reranker"
	"github.com/knoguchi/assistant/internal/server"
	"github.com/knoguchi/assistant/internal/service"
	"github.com/knoguchi/assistant/internal/tokens"
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
		slog.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("starting assistant service",
		"grpc_port", cfg.GRPCPort,
		"ops_port", cfg.OpsPort,
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

	// Initialize the embedder first; its probe discovers the vector
	// dimension the collections are created with.
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

	// Initialize reranker and LLM
	rerank := reranker.NewHTTPReranker(cfg.RerankerBaseURL, cfg.RerankerModelName)
	slog.Info("initialized reranker", "model", cfg.RerankerModelName)

	provider := llm.NewProvider(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMBaseURL,
		cfg.LLMModelName, cfg.LLMTimeout, slog.Default())

	counter := tokens.NewCounter(cfg.LLMModelName)

	// Initialize the task queue for document admission
	queue, err := broker.NewQueue(ctx, cfg.RedisURL, cfg.TaskQueue, cfg.MaxRetries, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer queue.Close()
	slog.Info("connected to Redis", "queue", cfg.TaskQueue)

	// Initialize services
	chatSvc := service.NewChatService(embed, vectorStore, chunkRepo, rerank, provider, counter,
		service.ChatConfig{
			CacheThreshold:      cfg.CacheThreshold,
			SearchLimit:         cfg.SearchLimit,
			RerankTopK:          cfg.RerankTopK,
			MaxContextTokens:    cfg.MaxContextTokens,
			ReserveOutputTokens: cfg.ReserveOutputTokens,
		}, slog.Default())
	kbSvc := service.NewKnowledgeBaseService(queue, vectorStore, cfg.MaxFileSize, slog.Default())

	// Create gRPC server
	grpcServer, err := server.NewGRPCServer(server.GRPCServerConfig{
		Port:   cfg.GRPCPort,
		Logger: slog.Default(),
	}, server.Services{
		ChatService:          chatSvc,
		KnowledgeBaseService: kbSvc,
	})
	if err != nil {
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}

	// Create the operational HTTP server
	opsServer := server.NewOpsServer(server.OpsServerConfig{
		Port:   cfg.OpsPort,
		Logger: slog.Default(),
		ReadyChecks: map[string]server.ReadyCheck{
			"postgres": func(ctx context.Context) error { return db.Ping(ctx) },
			"redis":    func(ctx context.Context) error { return queue.Ping(ctx) },
		},
	})

	// Start servers
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		if err := opsServer.Start(); err != nil {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	}

	// Graceful shutdown
	slog.Info("shutting down servers...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown HTTP server", "error", err)
	}
	if err := grpcServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown gRPC server", "error", err)
	}

	slog.Info("servers stopped")
	return nil
}

// Ensure interfaces are satisfied at compile time
var (
	_ repository.ChunkRepository = (*postgres.ChunkRepo)(nil)
	_ vectorstore.VectorStore    = (*vectorstore.QdrantStore)(nil)
	_ embedder.Embedder          = (*embedder.OllamaEmbedder)(nil)
	_ reranker.Reranker          = (*reranker.HTTPReranker)(nil)
	_ service.TaskQueue          = (*broker.Queue)(nil)
)
