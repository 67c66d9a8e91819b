package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	grpcmetadata "google.golang.org/grpc/metadata"

	"github.com/knoguchi/assistant/internal/llm"
)

// Metadata keys the front door sets on every chat call.
const (
	userIDKey  = "x-user-id"
	orgIDKey   = "x-organization-id"
	groupsKey  = "x-group-ids"
	historyKey = "x-chat-history"
)

// Identity is the caller's tenant context as carried in gRPC metadata.
// A nil field means the header was absent or malformed; malformed values
// never fail the request, they only narrow what the caller can see.
type Identity struct {
	UserID   *int64
	OrgID    *int64
	GroupIDs []int64
}

// identityFromContext extracts the caller identity from incoming metadata.
func identityFromContext(ctx context.Context) Identity {
	md, ok := grpcmetadata.FromIncomingContext(ctx)
	if !ok {
		return Identity{}
	}

	return Identity{
		UserID:   parseIntHeader(md, userIDKey),
		OrgID:    parseIntHeader(md, orgIDKey),
		GroupIDs: parseGroupIDs(md),
	}
}

func parseIntHeader(md grpcmetadata.MD, key string) *int64 {
	vals := md.Get(key)
	if len(vals) == 0 {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(vals[0]), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseGroupIDs parses the comma-separated group list. Empty entries are
// skipped; a single unparsable entry invalidates the whole list, since a
// partial list would silently change the caller's visibility.
func parseGroupIDs(md grpcmetadata.MD) []int64 {
	vals := md.Get(groupsKey)
	if len(vals) == 0 {
		return nil
	}

	var ids []int64
	for _, part := range strings.Split(vals[0], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil
		}
		ids = append(ids, n)
	}
	return ids
}

// historyFromContext decodes the prior conversation turns from metadata.
// Entries missing a role or content are dropped; malformed JSON yields an
// empty history rather than an error.
func historyFromContext(ctx context.Context) []llm.Message {
	md, ok := grpcmetadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}
	vals := md.Get(historyKey)
	if len(vals) == 0 {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(vals[0]), &raw); err != nil {
		return nil
	}

	var history []llm.Message
	for _, entry := range raw {
		var msg llm.Message
		if err := json.Unmarshal(entry, &msg); err != nil {
			continue
		}
		if msg.Role == "" || msg.Content == "" {
			continue
		}
		history = append(history, msg)
	}
	return history
}
