package taskfile

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"taskbridge.dev/internal/logging"
)

// ErrNotFound is returned when no taskfile could be located.
var ErrNotFound = errors.New("taskfile not found")

// candidateNames are probed in order inside each search directory.
var candidateNames = []string{"Taskfile.yml", "Taskfile.yaml"}

// Resolve locates the taskfile to read. An explicit path must exist;
// otherwise the git repository root and the current directory are probed.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, explicit)
		}
		return filepath.Abs(explicit)
	}

	if root, err := gitRoot(); err == nil {
		if path, ok := probeDir(root); ok {
			logging.Debug("found taskfile in git root", "path", path)
			return path, nil
		}
	}

	if path, ok := probeDir("."); ok {
		logging.Debug("found taskfile in current directory", "path", path)
		return filepath.Abs(path)
	}

	return "", fmt.Errorf("%w: provide --source or run inside a directory with a Taskfile.yml", ErrNotFound)
}

// gitRoot returns the top-level directory of the enclosing git repository.
func gitRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("empty git root")
	}
	return root, nil
}

func probeDir(dir string) (string, bool) {
	for _, name := range candidateNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
