package commands

import (
	"github.com/arthur-debert/pathkeeper/pkg/config"
	"github.com/arthur-debert/pathkeeper/pkg/pathenv"
	"github.com/arthur-debert/pathkeeper/pkg/store"
)

// BucketState describes one overflow bucket for display.
type BucketState struct {
	Name    string
	Defined bool
	Entries []string
	Length  int
}

// ShowResult is a read-only view of the master variable and its
// buckets.
type ShowResult struct {
	Scope         string
	Master        string
	MasterEntries []string
	MasterLength  int
	MaxLength     int
	Protected     int
	Buckets       []BucketState
}

// Show reads the current state of the configured scope without
// mutating anything. It needs no elevation, even for machine scope.
func Show(cfg config.Config, st store.Store) (*ShowResult, error) {
	scope := cfg.StoreScope()
	syntax := pathenv.NewSyntax(cfg.Delimiter, cfg.Wrap)

	master, _, err := st.Get(cfg.Master, scope)
	if err != nil {
		return nil, err
	}

	entries := syntax.Split(master)
	res := &ShowResult{
		Scope:         scope.String(),
		Master:        master,
		MasterEntries: entries,
		MasterLength:  len(master),
		MaxLength:     cfg.MaxLength,
	}
	for _, e := range entries {
		if syntax.IsVariableReference(e) {
			res.Protected++
		}
	}

	for _, name := range cfg.BucketNames() {
		value, defined, err := st.Get(name, scope)
		if err != nil {
			return nil, err
		}
		res.Buckets = append(res.Buckets, BucketState{
			Name:    name,
			Defined: defined,
			Entries: syntax.Split(value),
			Length:  len(value),
		})
	}
	return res, nil
}
