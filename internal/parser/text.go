package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	readWindow  = 1 << 20 // 1 MiB
	flushAtSize = 2 * readWindow
)

// parseText reads plain text in windows so arbitrarily large files never
// load fully into memory. The buffer is split whenever it reaches two
// windows; the last chunk of each split is carried forward so the splitter
// never sees a truncated boundary. Text files have no pages; everything is
// page 1.
func (p *Parser) parseText(ctx context.Context, path string) ([]Chunk, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var chunks []Chunk
	var buf strings.Builder
	window := make([]byte, readWindow)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, err := file.Read(window)
		if n > 0 {
			buf.Write(window[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		if buf.Len() < flushAtSize {
			continue
		}

		pieces := p.splitter.Split(buf.String())
		buf.Reset()
		if len(pieces) == 0 {
			continue
		}

		// Keep the last piece as carry; more text may still belong to it.
		for _, piece := range pieces[:len(pieces)-1] {
			chunks = append(chunks, Chunk{Text: piece, Page: 1})
		}
		buf.WriteString(pieces[len(pieces)-1])
	}

	for _, piece := range p.splitter.Split(buf.String()) {
		chunks = append(chunks, Chunk{Text: piece, Page: 1})
	}

	return chunks, nil
}
