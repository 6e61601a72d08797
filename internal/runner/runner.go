// Package runner implements the external-listing source strategy: probing
// for an installed task-runner binary and parsing its JSON task listing.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"taskbridge.dev/internal/logging"
)

// ErrNotFound is returned when no task-runner binary responds to probing.
var ErrNotFound = errors.New("task runner not found (install go-task: https://taskfile.dev)")

// candidates are the binary names probed in order. Some distributions ship
// the runner as go-task to avoid clashing with taskwarrior.
var candidates = []string{"task", "go-task"}

// probeTimeout bounds each version-query probe.
const probeTimeout = 3 * time.Second

// Runner is an adopted task-runner binary. The zero value is not usable;
// obtain one via Detect.
type Runner struct {
	// Bin is the probed executable name.
	Bin string
}

// Detect probes the candidate binaries with a version query and adopts the
// first one that responds. The probe output is discarded.
func Detect(ctx context.Context) (*Runner, error) {
	for _, bin := range candidates {
		if probe(ctx, bin) {
			logging.Debug("adopted task runner", "bin", bin)
			return &Runner{Bin: bin}, nil
		}
		logging.Debug("probe failed", "bin", bin)
	}
	return nil, ErrNotFound
}

func probe(ctx context.Context, bin string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, bin, "--version")
	return cmd.Run() == nil
}

// InvocationError reports a listing invocation that exited non-zero.
// Stderr carries whatever the runner printed.
type InvocationError struct {
	Bin      string
	ExitCode int
	Stderr   string
}

func (e *InvocationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Bin, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", e.Bin, e.ExitCode)
}

// MalformedOutputError reports listing output that could not be decoded
// into the expected shape.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed task listing: %v", e.Err)
	}
	return "malformed task listing: missing 'tasks' list"
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
