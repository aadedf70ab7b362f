package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kyriakid1s/portfolio/internal/config"
	"github.com/kyriakid1s/portfolio/internal/logging"
	"github.com/kyriakid1s/portfolio/internal/testutils"
	"github.com/kyriakid1s/portfolio/pkg/adapters/memory"
	"github.com/kyriakid1s/portfolio/pkg/adapters/smtp"
	"github.com/kyriakid1s/portfolio/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedContent(t *testing.T) Options {
	t.Helper()
	dir := testutils.SetupContentDir(t, map[string]string{
		"hello-world.md": testutils.Post("Hello World", "2024-01-10", "# Hello\n\nFirst post body."),
	})
	return Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		ContentDir: dir,
	}
}

func TestLoadConfig_ContentOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("content_dir: posts\n"), 0644))

	cfg, err := loadConfig(Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, "posts", cfg.ContentDir)

	cfg, err = loadConfig(Options{ConfigPath: cfgPath, ContentDir: "elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.ContentDir)
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(io.EOF))

	boom := errors.New("boom")
	assert.Equal(t, boom, handleExecutionError(boom))
}

func TestRunTerminal_LineMode(t *testing.T) {
	opts := seedContent(t)
	var out bytes.Buffer

	err := RunTerminal(TerminalOptions{
		Options:  opts,
		NoBanner: true,
		In:       strings.NewReader("about\nposts\nclear\nsudo\nexit\nhelp\n"),
		Out:      &out,
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Welcome to my developer terminal!")
	assert.Contains(t, got, "$ about\nFull Stack Developer")
	assert.Contains(t, got, "2024-01-10  hello-world  Hello World")
	assert.Contains(t, got, "--- cleared ---\n$ sudo")
	assert.NotContains(t, got, "$ help", "input after exit is never read")
	assert.NotContains(t, got, "\x1b[", "piped output carries no escape codes")
}

func TestRunTerminal_JSONMode(t *testing.T) {
	opts := seedContent(t)
	var out bytes.Buffer

	err := RunTerminal(TerminalOptions{
		Options: opts,
		JSON:    true,
		In:      strings.NewReader("\"nope\"\nclear\n"),
		Out:     &out,
	})
	require.NoError(t, err)

	dec := json.NewDecoder(&out)
	var events []runner.JSONEvent
	for dec.More() {
		var ev runner.JSONEvent
		require.NoError(t, dec.Decode(&ev))
		events = append(events, ev)
	}
	require.Len(t, events, 3)
	assert.Equal(t, "output", events[0].Type)
	assert.Equal(t, "output", events[1].Type)
	require.Len(t, events[1].Lines, 2)
	assert.True(t, events[1].Lines[1].IsError())
	assert.Equal(t, "clear", events[2].Type)
}

func TestRunTerminal_MissingContent(t *testing.T) {
	err := RunTerminal(TerminalOptions{
		Options: Options{
			ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
			ContentDir: filepath.Join(t.TempDir(), "nope"),
		},
		In:  strings.NewReader(""),
		Out: io.Discard,
	})
	assert.Error(t, err)
}

func TestListPosts(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ListPosts(seedContent(t), &out))
	assert.Equal(t, "2024-01-10  hello-world  Hello World\n", out.String())
}

func TestNewMailer(t *testing.T) {
	logger := logging.NewNop()

	t.Run("DryRun", func(t *testing.T) {
		m, err := newMailer(config.SMTP{Host: "smtp.example.com"}, true, logger)
		require.NoError(t, err)
		assert.IsType(t, &memory.Outbox{}, m)
	})

	t.Run("Disabled", func(t *testing.T) {
		m, err := newMailer(config.SMTP{}, false, logger)
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("SMTP", func(t *testing.T) {
		m, err := newMailer(config.SMTP{Host: "smtp.example.com", Port: 587, Username: "me@example.com"}, false, logger)
		require.NoError(t, err)
		assert.IsType(t, &smtp.Mailer{}, m)
	})
}

func TestNewRateLimiter(t *testing.T) {
	logger := logging.NewNop()
	ctx := context.Background()
	cfg := config.RateLimit{Limit: 1, Window: config.Duration(time.Minute), Prefix: "test:"}

	t.Run("Memory", func(t *testing.T) {
		l, closeFn, err := newRateLimiter(ctx, cfg, logger)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &memory.RateLimiter{}, l)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		redisCfg := cfg
		redisCfg.RedisURL = "redis://" + mr.Addr()

		l, closeFn, err := newRateLimiter(ctx, redisCfg, logger)
		require.NoError(t, err)
		defer closeFn()

		ok, _, err := l.Allow(ctx, "198.51.100.7")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, _, err = l.Allow(ctx, "198.51.100.7")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, mr.Exists("test:contact:198.51.100.7"))
	})

	t.Run("BadURL", func(t *testing.T) {
		badCfg := cfg
		badCfg.RedisURL = "://nope"
		_, _, err := newRateLimiter(ctx, badCfg, logger)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	var out bytes.Buffer
	opts := seedContent(t)
	require.NoError(t, Validate(opts, &out))
	assert.Contains(t, out.String(), "is valid")

	opts.ContentDir = testutils.SetupContentDir(t, map[string]string{
		"draft.md": testutils.Post("", "someday", "body"),
	})
	err := Validate(opts, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 2 errors")
}
