package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/kyriakid1s/portfolio/internal/presentation/html"
	"github.com/kyriakid1s/portfolio/internal/validator"
)

// Validate checks the configuration and every post in the content directory.
func Validate(opts Options, w io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	site, err := newSite(cfg, createLogger(opts.Debug, false), opts.Debug)
	if err != nil {
		return err
	}
	if err := validator.ValidateContent(context.Background(), site.Store(), html.New().Render); err != nil {
		return err
	}
	fmt.Fprintf(w, "Content in %s is valid! ✅\n", cfg.ContentDir)
	return nil
}
