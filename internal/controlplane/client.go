// Package controlplane reports document lifecycle status to the service
// that owns the documents table and tenant quota.
package controlplane

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	controlplanev1 "github.com/knoguchi/assistant/gen/controlplane/v1"
)

// Document status values accepted by the control plane.
const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusError      = "ERROR"
)

// DefaultTimeout bounds each status RPC.
const DefaultTimeout = 30 * time.Second

// Notifier is the part of the control plane the ingestion worker needs.
type Notifier interface {
	// UpdateDocumentStatus reports a status change and returns whether the
	// control plane acknowledged it. It never returns an error: status
	// reporting must not alter the worker's own outcome.
	UpdateDocumentStatus(ctx context.Context, documentID, status string, chunksCount int, errorMessage string) bool
}

// Client is a lazily-connected gRPC client to the control plane. The
// connection is established on first use and reused across calls.
type Client struct {
	addr    string
	timeout time.Duration
	logger  *slog.Logger

	mu   sync.Mutex
	conn *grpc.ClientConn
	stub controlplanev1.DocumentStatusServiceClient
}

// New creates a control plane client for the given address.
func New(addr string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		addr:    addr,
		timeout: timeout,
		logger:  logger,
	}
}

func (c *Client) client() (controlplanev1.DocumentStatusServiceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stub != nil {
		return c.stub, nil
	}

	conn, err := grpc.NewClient(
		c.addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to control plane at %s: %w", c.addr, err)
	}

	c.conn = conn
	c.stub = controlplanev1.NewDocumentStatusServiceClient(conn)
	return c.stub, nil
}

// UpdateDocumentStatus reports a document status change. Returns true only
// on an acknowledged reply; every failure is logged and reported as false.
func (c *Client) UpdateDocumentStatus(ctx context.Context, documentID, status string, chunksCount int, errorMessage string) bool {
	stub, err := c.client()
	if err != nil {
		c.logger.Error("control plane unavailable", "document_id", documentID, "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := stub.UpdateDocumentStatus(ctx, &controlplanev1.UpdateDocumentStatusRequest{
		DocumentId:   documentID,
		Status:       status,
		ChunksCount:  int32(chunksCount),
		ErrorMessage: errorMessage,
	})
	if err != nil {
		c.logger.Error("failed to update document status",
			"document_id", documentID, "status", status, "error", err)
		return false
	}
	if !resp.GetSuccess() {
		c.logger.Warn("control plane rejected status update",
			"document_id", documentID, "status", status, "message", resp.GetMessage())
		return false
	}

	return true
}

// Close closes the underlying connection if one was established.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ensure Client implements Notifier.
var _ Notifier = (*Client)(nil)
