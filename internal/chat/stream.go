package chat

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode"
	"unicode/utf8"
)

// Chunks splits text after every whitespace rune, so each chunk is a word
// with its trailing space. Joining the chunks gives back text unchanged.
func Chunks(text string) []string {
	var chunks []string
	start := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			end := i + utf8.RuneLen(r)
			chunks = append(chunks, text[start:end])
			start = end
		}
	}
	if start < len(text) {
		chunks = append(chunks, text[start:])
	}
	return chunks
}

// Streamer writes an answer chunk by chunk with typing delays.
type Streamer struct {
	InitialDelay time.Duration
	ChunkDelay   time.Duration
}

// Stream sets the plain text headers and writes text to w. It returns
// ctx.Err() when the client goes away before the last chunk.
func (s Streamer) Stream(ctx context.Context, w http.ResponseWriter, text string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	if err := wait(ctx, s.InitialDelay); err != nil {
		return err
	}
	for _, chunk := range Chunks(text) {
		if err := wait(ctx, s.ChunkDelay); err != nil {
			return err
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
