// Package commands implements the operations behind the pathkeeper CLI,
// keeping cobra wiring and terminal rendering out of the business logic.
package commands

import (
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/pathkeeper/pkg/backup"
	"github.com/arthur-debert/pathkeeper/pkg/config"
	"github.com/arthur-debert/pathkeeper/pkg/elevate"
	"github.com/arthur-debert/pathkeeper/pkg/logging"
	"github.com/arthur-debert/pathkeeper/pkg/pathenv"
	"github.com/arthur-debert/pathkeeper/pkg/store"
)

// TidyOptions configures one Tidy run.
type TidyOptions struct {
	Config config.Config
	Store  store.Store

	// DryRun plans without backing up or persisting anything.
	DryRun bool
	// NoBackup skips the pre-mutation snapshot.
	NoBackup bool
	// Env overrides the process environment snapshot, for tests. Nil
	// selects os.Environ.
	Env map[string]string
}

// TidyResult reports what a Tidy run did (or, dry, would do).
type TidyResult struct {
	Plan       pathenv.Result
	BackupPath string
	Changed    bool
	DryRun     bool
}

// Tidy runs the full pipeline against the configured scope: elevation
// check, bucket creation, backup, plan, persist. The variable store is
// read once up front and written once at the end; there is no
// read-modify-write interleaving. A concurrent writer is an accepted
// risk, not guarded against.
func Tidy(opts TidyOptions) (*TidyResult, error) {
	logger := logging.GetLogger("tidy")
	defer logging.LogDuration(time.Now(), "tidy")

	cfg := opts.Config
	scope := cfg.StoreScope()
	names := cfg.BucketNames()

	if !opts.DryRun {
		if err := elevate.Check(scope); err != nil {
			return nil, err
		}
		if err := store.EnsureDefined(opts.Store, scope, names); err != nil {
			return nil, err
		}
	}

	master, _, err := opts.Store.Get(cfg.Master, scope)
	if err != nil {
		return nil, err
	}
	buckets := make([]string, len(names))
	for i, name := range names {
		buckets[i], _, err = opts.Store.Get(name, scope)
		if err != nil {
			return nil, err
		}
	}

	env := opts.Env
	if env == nil {
		env = environSnapshot()
	}

	result := &TidyResult{DryRun: opts.DryRun}

	if !opts.DryRun && !opts.NoBackup {
		read := map[string]string{cfg.Master: master}
		for i, name := range names {
			read[name] = buckets[i]
		}
		w := backup.NewWriter(cfg.BackupDir)
		result.BackupPath, err = w.Snapshot(scope.String(), append([]string{cfg.Master}, names...),
			func(name string) string { return read[name] })
		if err != nil {
			return nil, err
		}
	}

	result.Plan = pathenv.Plan(pathenv.Input{
		Master:  master,
		Buckets: buckets,
		Env:     env,
	}, cfg.Params())

	result.Changed = result.Plan.Master != master
	for i := range names {
		if result.Plan.Buckets[i] != buckets[i] {
			result.Changed = true
		}
	}

	if opts.DryRun {
		logger.Info().Bool("changed", result.Changed).Msg("dry run, nothing persisted")
		return result, nil
	}

	if err := opts.Store.Set(cfg.Master, result.Plan.Master, scope); err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := opts.Store.Set(name, result.Plan.Buckets[i], scope); err != nil {
			return nil, err
		}
	}

	logger.Info().
		Str("scope", scope.String()).
		Int("evicted", result.Plan.Evicted).
		Bool("changed", result.Changed).
		Msg("search path tidied")
	return result, nil
}

// environSnapshot captures the process environment as a map. Only this
// one snapshot feeds substitution; the persisted store is never
// re-consulted for it.
func environSnapshot() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.Index(kv, "="); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}
