// Package backup persists a human-readable snapshot of the master and
// bucket variables before any mutation. The snapshot is write-only from
// the tool's perspective: nothing in pathkeeper ever reads one back.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/pathkeeper/pkg/errors"
	"github.com/arthur-debert/pathkeeper/pkg/logging"
)

// Writer writes timestamped snapshots into a directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter returns a Writer targeting dir. An empty dir selects the
// default location under the XDG state directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = filepath.Join(xdg.StateHome, "pathkeeper", "backups")
	}
	return &Writer{dir: dir, now: time.Now}
}

// Snapshot writes one backup file holding a name/value pair per line
// for each variable, grouped under a header naming the scope, and
// returns the file's path. Values are read through the supplied
// function so the Writer stays independent of the store interface.
func (w *Writer) Snapshot(scope string, names []string, read func(name string) string) (string, error) {
	logger := logging.GetLogger("backup")

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupWrite,
			"creating backup directory %s", w.dir)
	}

	stamp := w.now().Format("20060102-150405")
	path := filepath.Join(w.dir, fmt.Sprintf("pathkeeper-%s-%s.txt", scope, stamp))

	var b strings.Builder
	fmt.Fprintf(&b, "# pathkeeper backup, %s scope, %s\n", scope, w.now().Format(time.RFC3339))
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, read(name))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupWrite, "writing %s", path)
	}

	logger.Info().Str("path", path).Int("variables", len(names)).Msg("backup written")
	return path, nil
}
