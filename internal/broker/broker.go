// Package broker provides the durable task queue between the front door's
// document admission and the ingestion workers.
package broker

import (
	"context"
	"errors"
)

// DocumentTask is the unit of ingestion work. Attempt starts at 1 and is
// incremented by the broker on every retry.
type DocumentTask struct {
	TaskID         string `json:"task_id"`
	DocumentID     string `json:"document_id"`
	FilePath       string `json:"file_path"`
	Filename       string `json:"filename"`
	ContentType    string `json:"content_type"`
	OrganizationID int64  `json:"organization_id"`
	GroupID        int64  `json:"group_id"` // 0 means org-wide
	OwnerID        int64  `json:"owner_id"`
	Attempt        int    `json:"attempt"`
}

// Handler processes one task. lastAttempt tells the handler whether a
// failure will be retried, so it can finalize only at terminal outcomes.
// Returning an error wrapped with Permanent suppresses retries.
type Handler func(ctx context.Context, task DocumentTask, lastAttempt bool) error

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks an error as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether the error was marked with Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}
