package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// JSONEvent is one line of JSON-mode output.
type JSONEvent struct {
	Type  string              `json:"type"` // "output" or "clear"
	Lines []domain.OutputLine `json:"lines,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Input lines may be JSON strings or raw text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		text = val
	}
	return SanitizeInput(text)
}

func (h *JSONHandler) Output(ctx context.Context, entries []domain.OutputLine) error {
	if len(entries) == 0 {
		return nil
	}
	return h.Encoder.Encode(JSONEvent{Type: "output", Lines: entries})
}

func (h *JSONHandler) Clear(ctx context.Context) error {
	return h.Encoder.Encode(JSONEvent{Type: "clear"})
}
