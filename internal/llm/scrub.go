package llm

import (
	"strings"
)

var (
	startTags = []string{"<think>", "<thinking>"}
	endTags   = []string{"</think>", "</thinking>"}
)

// Scrubber removes model "thinking" regions from a chunked text stream.
// Tags may be split across chunk boundaries, so a possible partial tag at
// the end of the buffer is held back until more input arrives.
//
// The zero value is ready to use. Feed returns the text safe to forward so
// far; Flush returns whatever remains once the stream has ended.
type Scrubber struct {
	buffer   string
	thinking bool
}

// Feed consumes the next chunk and returns the scrubbed text that can be
// forwarded.
func (s *Scrubber) Feed(chunk string) string {
	s.buffer += chunk

	var out strings.Builder
	for {
		if s.thinking {
			idx, tag := findFirst(s.buffer, endTags)
			if idx < 0 {
				// Drop scanned thinking content, keep a possible partial
				// end tag.
				s.buffer = s.buffer[partialTagStart(s.buffer, endTags):]
				return out.String()
			}
			s.buffer = s.buffer[idx+len(tag):]
			s.thinking = false
			continue
		}

		idx, tag := findFirst(s.buffer, startTags)
		if idx >= 0 {
			out.WriteString(s.buffer[:idx])
			s.buffer = s.buffer[idx+len(tag):]
			s.thinking = true
			continue
		}

		keep := partialTagStart(s.buffer, startTags)
		out.WriteString(s.buffer[:keep])
		s.buffer = s.buffer[keep:]
		return out.String()
	}
}

// Flush returns the remaining buffered text. Text still inside an unclosed
// thinking region is discarded.
func (s *Scrubber) Flush() string {
	out := ""
	if !s.thinking {
		out = s.buffer
	}
	s.buffer = ""
	return out
}

// Scrub removes thinking regions from a complete text.
func Scrub(text string) string {
	var s Scrubber
	return s.Feed(text) + s.Flush()
}

// findFirst returns the earliest occurrence of any tag in text.
func findFirst(text string, tags []string) (int, string) {
	best := -1
	bestTag := ""
	for _, tag := range tags {
		if idx := strings.Index(text, tag); idx >= 0 && (best < 0 || idx < best) {
			best = idx
			bestTag = tag
		}
	}
	return best, bestTag
}

// partialTagStart returns the index where a trailing proper prefix of one of
// the tags begins, or len(text) when the tail is safe to forward.
func partialTagStart(text string, tags []string) int {
	i := strings.LastIndexByte(text, '<')
	if i < 0 {
		return len(text)
	}
	suffix := text[i:]
	for _, tag := range tags {
		if len(suffix) < len(tag) && strings.HasPrefix(tag, suffix) {
			return i
		}
	}
	return len(text)
}
