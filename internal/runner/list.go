package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"taskbridge.dev/internal/logging"
)

// ListedTask is one entry of the runner's JSON task listing. The runner has
// reported the id under "task" in older releases and "name" in newer ones.
type ListedTask struct {
	Task string `json:"task"`
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// ID returns the task identifier, whichever field carries it.
func (lt ListedTask) ID() string {
	if lt.Task != "" {
		return lt.Task
	}
	return lt.Name
}

type listing struct {
	Tasks []ListedTask `json:"tasks"`
}

// List invokes the adopted runner with its JSON listing flags, running in
// dir so the runner picks up the right taskfile.
func (r *Runner) List(dir string) ([]ListedTask, error) {
	cmd := exec.Command(r.Bin, "--list-all", "--json")
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug("listing tasks", "bin", r.Bin, "dir", dir)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &InvocationError{
				Bin:      r.Bin,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, err
	}

	var result listing
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, &MalformedOutputError{Err: err}
	}
	if result.Tasks == nil {
		return nil, &MalformedOutputError{}
	}
	return result.Tasks, nil
}
