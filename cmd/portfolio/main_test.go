package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kyriakid1s/portfolio"
	"github.com/kyriakid1s/portfolio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	got := execute(t, "version")
	assert.Equal(t, "portfolio version "+strings.TrimSpace(portfolio.Version)+"\n", got)
}

func TestPostsCommand(t *testing.T) {
	dir := testutils.SetupContentDir(t, map[string]string{
		"shipping-go.md": testutils.Post("Shipping Go", "2025-02-01", "Body."),
	})

	got := execute(t, "posts", "--content", dir, "--config", filepath.Join(dir, "none.yaml"))
	assert.Equal(t, "2025-02-01  shipping-go  Shipping Go\n", got)
}

func TestSubcommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"terminal", "serve", "mcp", "posts", "intro", "validate", "version"} {
		assert.Contains(t, names, want)
	}
}
