// Package store abstracts the OS-level environment variable store the
// pipeline reads from and writes back to. The core never touches the
// store mid-run: each variable is read once at the start and written
// once at the end of an invocation.
package store

import (
	"github.com/arthur-debert/pathkeeper/pkg/errors"
)

// Scope selects which variable store a name lives in.
type Scope int

const (
	// ScopeUser is the per-user environment store.
	ScopeUser Scope = iota
	// ScopeMachine is the system-wide store; writing it requires
	// elevation, checked by pkg/elevate before any mutation.
	ScopeMachine
)

// String returns the scope name used in config files and flags.
func (s Scope) String() string {
	if s == ScopeMachine {
		return "machine"
	}
	return "user"
}

// ParseScope converts a config/flag value into a Scope.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "user":
		return ScopeUser, nil
	case "machine", "system":
		return ScopeMachine, nil
	default:
		return ScopeUser, errors.Newf(errors.ErrInvalidInput, "unknown scope %q (want user or machine)", s)
	}
}

// Store is the persisted variable store collaborator.
type Store interface {
	// Get returns the value of name in scope and whether it is defined.
	Get(name string, scope Scope) (string, bool, error)
	// Set writes value under name in scope.
	Set(name, value string, scope Scope) error
}

// EnsureDefined creates every named variable that is absent from the
// store as an empty string. The pipeline expects its bucket variables to
// exist before it runs.
func EnsureDefined(st Store, scope Scope, names []string) error {
	for _, name := range names {
		_, ok, err := st.Get(name, scope)
		if err != nil {
			return err
		}
		if !ok {
			if err := st.Set(name, "", scope); err != nil {
				return err
			}
		}
	}
	return nil
}
