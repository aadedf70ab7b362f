package registry

import (
	"strings"
	"testing"

	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(name string) Command {
	return Command{
		Name:        name,
		Description: "echo " + name,
		Execute: func(args []string) domain.Result {
			return domain.Text(append([]string{name}, args...)...)
		},
	}
}

func TestRegistry_OrderAndLookup(t *testing.T) {
	r, err := New(echo("help"), echo("contact"), echo("clear"))
	require.NoError(t, err)

	assert.Equal(t, []string{"help", "contact", "clear"}, r.Names())
	assert.Equal(t, 3, r.Len())

	cmd, ok := r.Lookup("HeLp")
	require.True(t, ok, "lookup ignores case")
	assert.Equal(t, []string{"help", "a", "b"}, cmd.Execute([]string{"a", "b"}).Lines)

	_, ok = r.Lookup("xyz")
	assert.False(t, ok)
}

func TestRegistry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cmds    []Command
		wantErr error
	}{
		{"Duplicate", []Command{echo("a"), echo("a")}, domain.ErrDuplicateCommand},
		{"Empty Name", []Command{echo("")}, domain.ErrInvalidCommandName},
		{"Upper Case", []Command{echo("Help")}, domain.ErrInvalidCommandName},
		{"Whitespace", []Command{echo("two words")}, domain.ErrInvalidCommandName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cmds...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := New(Command{Name: "noop"})
	assert.Error(t, err, "nil execute is rejected")
	assert.Panics(t, func() { MustNew(echo("a"), echo("a")) })
}

func TestRegistry_SuggestPrefixProperty(t *testing.T) {
	r := MustNew(echo("help"), echo("about"), echo("skills"), echo("contact"), echo("clear"), echo("sudo"))

	buffers := []string{"", "h", "C", "cl", "s", "SU", "x", "help", "helpme", " "}
	for _, b := range buffers {
		var want []string
		if b != "" {
			for _, k := range r.Names() {
				if strings.HasPrefix(strings.ToLower(k), strings.ToLower(b)) {
					want = append(want, k)
				}
			}
		}
		assert.Equal(t, want, r.Suggest(b), "buffer %q", b)
	}

	assert.Equal(t, []string{"contact", "clear"}, r.Suggest("c"), "registry order is preserved")
	assert.Empty(t, r.Suggest(""))
}
