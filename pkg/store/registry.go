package store

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/pathkeeper/pkg/errors"
	"github.com/arthur-debert/pathkeeper/pkg/logging"
)

// Registry keys holding the persisted environment per scope.
const (
	userEnvKey    = `HKCU\Environment`
	machineEnvKey = `HKLM\SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
)

// RegistryStore reads and writes the Windows registry environment keys
// through reg.exe. Values are written as REG_EXPAND_SZ so that the
// placeholder tokens in the master value expand when consumed.
type RegistryStore struct {
	// run is swapped out in tests.
	run func(args ...string) (string, int, error)
}

// NewRegistryStore returns a Store backed by reg.exe. Constructing it
// on a non-Windows host fails with ErrStoreUnsupported.
func NewRegistryStore() (*RegistryStore, error) {
	if runtime.GOOS != "windows" {
		return nil, errors.Newf(errors.ErrStoreUnsupported,
			"the registry store requires Windows, not %s", runtime.GOOS)
	}
	return &RegistryStore{run: runReg}, nil
}

func keyForScope(scope Scope) string {
	if scope == ScopeMachine {
		return machineEnvKey
	}
	return userEnvKey
}

// Get implements Store.
func (r *RegistryStore) Get(name string, scope Scope) (string, bool, error) {
	out, code, err := r.run("query", keyForScope(scope), "/v", name)
	if err != nil {
		if code == 1 {
			// reg.exe exits 1 when the value does not exist.
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrStoreRead,
			"querying %s in %s scope", name, scope)
	}
	value, ok := parseRegQuery(out, name)
	return value, ok, nil
}

// Set implements Store.
func (r *RegistryStore) Set(name, value string, scope Scope) error {
	logger := logging.GetLogger("store")
	logger.Debug().Str("name", name).Str("scope", scope.String()).
		Int("length", len(value)).Msg("writing variable")

	_, _, err := r.run("add", keyForScope(scope),
		"/v", name, "/t", "REG_EXPAND_SZ", "/d", value, "/f")
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite,
			"writing %s in %s scope", name, scope)
	}
	return nil
}

// parseRegQuery extracts the data column for name from reg.exe query
// output. A value line looks like:
//
//	    Path    REG_EXPAND_SZ    C:\Windows;C:\Windows\System32
func parseRegQuery(out, name string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.EqualFold(fields[0], name) {
			continue
		}
		if !strings.HasPrefix(fields[1], "REG_") {
			continue
		}
		// The data column starts after the type token and may itself
		// contain spaces.
		idx := strings.Index(line, fields[1])
		rest := strings.TrimSpace(line[idx+len(fields[1]):])
		return rest, true
	}
	return "", false
}

func runReg(args ...string) (string, int, error) {
	cmd := exec.Command("reg", args...)
	out, err := cmd.CombinedOutput()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	}
	return string(out), code, err
}
