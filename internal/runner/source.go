package runner

import (
	"context"
	"path/filepath"

	"taskbridge.dev/internal/task"
)

// Source adapts the runner listing to the task.Source interface. The
// runner is detected once, at construction.
type Source struct {
	runner *Runner
	// Dir is where the listing runs; normally the taskfile's directory.
	Dir string
}

// NewSource probes for the runner binary and binds it to the directory
// containing the taskfile at sourcePath.
func NewSource(ctx context.Context, sourcePath string) (*Source, error) {
	r, err := Detect(ctx)
	if err != nil {
		return nil, err
	}
	return &Source{runner: r, Dir: filepath.Dir(sourcePath)}, nil
}

// Load obtains the raw descriptors from the runner's JSON listing. Runner
// descriptors carry no commands: the generated config invokes the runner
// per task instead of reconstructing command lines.
func (s *Source) Load() ([]task.Raw, error) {
	listed, err := s.runner.List(s.Dir)
	if err != nil {
		return nil, err
	}

	raw := make([]task.Raw, 0, len(listed))
	for _, lt := range listed {
		raw = append(raw, task.Raw{
			ID:          lt.ID(),
			Description: lt.Desc,
		})
	}
	return raw, nil
}

// Runner returns the adopted executable name.
func (s *Source) Runner() string {
	return s.runner.Bin
}

// RequiresCommands reports that runner-sourced descriptors never carry
// commands.
func (s *Source) RequiresCommands() bool {
	return false
}
