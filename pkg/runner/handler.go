package runner

import (
	"context"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (colored lines) and JSON (structured) modes.
type IOHandler interface {
	// Input reads one command line. It returns io.EOF when the source is exhausted.
	Input(ctx context.Context) (string, error)

	// Output presents transcript entries appended since the last call.
	Output(ctx context.Context, entries []domain.OutputLine) error

	// Clear tells the user the transcript was emptied.
	Clear(ctx context.Context) error
}
