package registry

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// ExecuteFunc defines the signature for a command implementation.
// It receives the argument tokens that followed the command name.
type ExecuteFunc func(args []string) domain.Result

// Command is one entry of the shell vocabulary.
type Command struct {
	Name        string
	Description string
	Execute     ExecuteFunc
}

// Registry is a closed, ordered set of commands.
// It is immutable after New and therefore safe for concurrent reads.
type Registry struct {
	order    []string
	commands map[string]Command
}

// New builds a registry from cmds, keeping their order for help and suggestions.
// Names must be non-empty, lower case and free of whitespace.
func New(cmds ...Command) (*Registry, error) {
	r := &Registry{
		order:    make([]string, 0, len(cmds)),
		commands: make(map[string]Command, len(cmds)),
	}
	for _, cmd := range cmds {
		if err := validateName(cmd.Name); err != nil {
			return nil, err
		}
		if cmd.Execute == nil {
			return nil, fmt.Errorf("command %q has no execute function", cmd.Name)
		}
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateCommand, cmd.Name)
		}
		r.order = append(r.order, cmd.Name)
		r.commands[cmd.Name] = cmd
	}
	return r, nil
}

// MustNew is like New but panics on an invalid command set.
func MustNew(cmds ...Command) *Registry {
	r, err := New(cmds...)
	if err != nil {
		panic(err)
	}
	return r
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", domain.ErrInvalidCommandName)
	}
	if strings.ToLower(name) != name {
		return fmt.Errorf("%w: %q must be lower case", domain.ErrInvalidCommandName, name)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", domain.ErrInvalidCommandName, name)
	}
	return nil
}

// Lookup finds a command by name, ignoring case.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// Names returns command names in registry order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Commands returns all commands in registry order.
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

// Suggest returns the names prefixed by buffer (case-insensitive), in registry order.
// An empty buffer has no suggestions.
func (r *Registry) Suggest(buffer string) []string {
	if buffer == "" {
		return nil
	}
	prefix := strings.ToLower(buffer)
	var out []string
	for _, name := range r.order {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
