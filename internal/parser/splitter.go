// Package parser turns uploaded files into ordered text chunks.
package parser

import (
	"strings"
)

// defaultSeparators are tried in order; the empty separator splits into
// single characters and always matches.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter breaks text into overlapping chunks of roughly chunkSize
// characters, preferring to split at paragraph, then line, then word
// boundaries.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// NewSplitter creates a new Splitter with the given size and overlap
func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 5
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// Split breaks text into chunks. Whitespace-only chunks are dropped.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	// Pick the first separator that occurs in the text; the empty separator
	// is the terminal fallback.
	sep := separators[len(separators)-1]
	rest := []string{}
	for i, cand := range separators {
		if cand == "" || strings.Contains(text, cand) {
			sep = cand
			rest = separators[i+1:]
			break
		}
	}

	splits := splitOn(text, sep)

	var final []string
	var good []string
	for _, piece := range splits {
		if len(piece) < s.chunkSize {
			good = append(good, piece)
			continue
		}

		// Oversized piece: flush what we have, then recurse with finer
		// separators.
		if len(good) > 0 {
			final = append(final, s.merge(good, sep)...)
			good = nil
		}
		if len(rest) == 0 {
			final = append(final, piece)
		} else {
			final = append(final, s.split(piece, rest)...)
		}
	}
	if len(good) > 0 {
		final = append(final, s.merge(good, sep)...)
	}

	return final
}

// merge greedily joins small splits into chunks no larger than chunkSize,
// carrying the tail of each chunk into the next for overlap.
func (s *Splitter) merge(splits []string, sep string) []string {
	sepLen := len(sep)

	var chunks []string
	var current []string
	total := 0

	joinLen := func(n int) int {
		if n <= 1 {
			return 0
		}
		return sepLen
	}

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunk := strings.TrimSpace(strings.Join(current, sep))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	for _, piece := range splits {
		pieceLen := len(piece)

		if total+pieceLen+joinLen(len(current)+1) > s.chunkSize && total > 0 {
			flush()

			// Drop pieces from the front until the retained tail fits in the
			// overlap budget and leaves room for the next piece.
			for total > s.chunkOverlap ||
				(total+pieceLen+joinLen(len(current)+1) > s.chunkSize && total > 0) {
				total -= len(current[0]) + joinLen(len(current))
				current = current[1:]
			}
		}

		current = append(current, piece)
		total += pieceLen + joinLen(len(current))
	}
	flush()

	return chunks
}

// splitOn splits text by the separator; the empty separator splits into
// individual characters.
func splitOn(text, sep string) []string {
	if sep == "" {
		runes := []rune(text)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out
	}

	parts := strings.Split(text, sep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
