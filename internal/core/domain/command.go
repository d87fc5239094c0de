package domain

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Command is an immutable specification of a child process invocation:
// an ordered argument list plus a set of environment variable overrides.
//
// Every method returns a new Command. The argument slice and environment
// map are never shared between values, so a Command derived from a
// template can be extended freely without the template observing the
// change.
type Command struct {
	args []string
	env  map[string]string
}

// NewCommand creates a Command with the given initial arguments.
func NewCommand(args ...string) Command {
	return Command{}.Append(args...)
}

// Append returns a copy of the command with the arguments added at the
// end. Duplicates are allowed and insertion order is preserved.
func (c Command) Append(args ...string) Command {
	if len(args) == 0 {
		return c
	}

	next := make([]string, 0, len(c.args)+len(args))
	next = append(next, c.args...)
	next = append(next, args...)

	return Command{args: next, env: c.env}
}

// WithEnv returns a copy of the command with the environment variable
// set. Setting the same key again replaces the previous value.
func (c Command) WithEnv(key, value string) Command {
	env := make(map[string]string, len(c.env)+1)
	for k, v := range c.env {
		env[k] = v
	}
	env[key] = value

	return Command{args: c.args, env: env}
}

// Args returns a copy of the argument list.
func (c Command) Args() []string {
	args := make([]string, len(c.args))
	copy(args, c.args)
	return args
}

// Env returns a copy of the environment overrides.
func (c Command) Env() map[string]string {
	env := make(map[string]string, len(c.env))
	for k, v := range c.env {
		env[k] = v
	}
	return env
}

// Environ returns the environment overrides as sorted KEY=VALUE entries.
func (c Command) Environ() []string {
	entries := make([]string, 0, len(c.env))
	for k, v := range c.env {
		entries = append(entries, k+"="+v)
	}
	sort.Strings(entries)
	return entries
}

// Empty reports whether the command has no arguments.
func (c Command) Empty() bool {
	return len(c.args) == 0
}

// ID returns a stable hash of the argument list, used to correlate log
// entries belonging to one invocation.
func (c Command) ID() string {
	h := xxhash.New()
	for _, arg := range c.args {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
