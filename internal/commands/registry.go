package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps command tokens (names and aliases) to commands.
// Lookups are exact and case-sensitive.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]Command
	names  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]Command)}
}

// Register adds c under its name and every alias. No token may be claimed
// twice; on conflict nothing is registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	claimed := append([]string{c.Name()}, c.Aliases()...)
	seen := make(map[string]bool, len(claimed))
	for i, token := range claimed {
		if _, taken := r.tokens[token]; taken || seen[token] {
			if i == 0 {
				return fmt.Errorf("command already registered: %s", token)
			}
			return fmt.Errorf("command alias already registered: %s", token)
		}
		seen[token] = true
	}

	for _, token := range claimed {
		r.tokens[token] = c
	}
	r.names = append(r.names, c.Name())
	sort.Strings(r.names)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(token string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.tokens[token]
	return c, ok
}

// Resolve is Find with ErrUnknownCommand for unregistered tokens.
func (r *Registry) Resolve(token string) (Command, error) {
	if c, ok := r.Find(token); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, token)
}

// Tokens returns every registered name and alias in sorted order.
func (r *Registry) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.tokens))
	for token := range r.tokens {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// All returns one entry per command, ordered by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Command, len(r.names))
	for i, name := range r.names {
		out[i] = r.tokens[name]
	}
	return out
}

// DefaultRegistry holds the built-in commands.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry and panics on conflict.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
