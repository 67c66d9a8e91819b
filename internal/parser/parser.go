package parser

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrValidation marks inputs that can never succeed. Callers should not
// retry work that fails with it.
var ErrValidation = errors.New("validation error")

// filenamePattern restricts uploads to plain names; anything with path
// separators or shell metacharacters is rejected before the file is opened.
var filenamePattern = regexp.MustCompile(`^[\w\-. ]+$`)

// Chunk is one extracted piece of text. Page is 1-based; formats without
// pages report page 1.
type Chunk struct {
	Text string
	Page int
}

// Parser extracts text chunks from supported file types (.pdf, .txt, .md).
type Parser struct {
	splitter *Splitter
}

// New creates a Parser splitting with the given chunk size and overlap
func New(chunkSize, chunkOverlap int) *Parser {
	return &Parser{splitter: NewSplitter(chunkSize, chunkOverlap)}
}

// Parse extracts ordered chunks from the file at path. The filename decides
// the format; unsupported extensions and malformed names fail with
// ErrValidation.
func (p *Parser) Parse(ctx context.Context, path, filename string) ([]Chunk, error) {
	if !filenamePattern.MatchString(filename) {
		return nil, fmt.Errorf("%w: invalid filename %q", ErrValidation, filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return p.parsePDF(ctx, path)
	case ".txt", ".md":
		return p.parseText(ctx, path)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrValidation, filepath.Ext(filename))
	}
}
