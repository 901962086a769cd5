// Package elevate checks the privilege precondition for writing the
// machine-wide variable store. It is a collaborator of the pipeline,
// consulted once before any mutation; the core itself never looks at
// privileges.
package elevate

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/arthur-debert/pathkeeper/pkg/errors"
	"github.com/arthur-debert/pathkeeper/pkg/store"
)

// Check returns nil when the current process may write the given
// scope. User scope is always writable. Machine scope needs root on
// unix-likes and an elevated token on Windows, probed with the usual
// "net session" trick since it fails fast for non-administrators.
func Check(scope store.Scope) error {
	if scope != store.ScopeMachine {
		return nil
	}

	if runtime.GOOS == "windows" {
		if err := exec.Command("net", "session").Run(); err != nil {
			return errors.New(errors.ErrElevationRequired,
				"machine scope requires an elevated (administrator) shell")
		}
		return nil
	}

	if os.Geteuid() != 0 {
		return errors.New(errors.ErrElevationRequired,
			"machine scope requires root")
	}
	return nil
}
