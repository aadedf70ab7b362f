package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/muesli/termenv"
)

// Line colors, shared with the interactive widget.
const (
	ColorCommand = "#4ade80"
	ColorResult  = "#d1d5db"
	ColorError   = "#f87171"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Profile termenv.Profile
	Prompt  string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithProfile sets the color profile. termenv.Ascii disables colors.
func WithProfile(p termenv.Profile) TextHandlerOption {
	return func(h *TextHandler) {
		h.Profile = p
	}
}

// WithPrompt prints prompt before each read.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Profile: termenv.ColorProfile(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honor cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			if h.Prompt != "" {
				fmt.Fprint(h.Writer, h.Prompt)
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(strings.TrimRight(res.text, "\r\n"))
			if err != nil {
				fmt.Fprintln(h.Writer, h.paint(fmt.Sprintf("Error: %v. Please try again.", err), ColorError))
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, entries []domain.OutputLine) error {
	for _, entry := range entries {
		color := ColorResult
		switch {
		case entry.IsError():
			color = ColorError
		case entry.IsCommand():
			color = ColorCommand
		}
		for _, line := range entry.Lines {
			if _, err := fmt.Fprintln(h.Writer, h.paint(line, color)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *TextHandler) Clear(ctx context.Context) error {
	if h.Profile == termenv.Ascii {
		// Piped output keeps the history; mark the boundary instead.
		_, err := fmt.Fprintln(h.Writer, "--- cleared ---")
		return err
	}
	termenv.NewOutput(h.Writer, termenv.WithProfile(h.Profile)).ClearScreen()
	return nil
}

func (h *TextHandler) paint(s, hex string) string {
	if h.Profile == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(h.Profile.Color(hex)).String()
}
