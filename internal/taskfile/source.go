package taskfile

import (
	"fmt"
	"os"

	"taskbridge.dev/internal/task"
)

// RunnerCommand is the executable name emitted into generated task entries
// for directly parsed taskfiles.
const RunnerCommand = "task"

// Source adapts a taskfile on disk to the task.Source interface.
type Source struct {
	Path string
}

// NewSource returns a Source reading the taskfile at path.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Load reads and parses the taskfile, yielding descriptors in document order.
func (s *Source) Load() ([]task.Raw, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taskfile %s: %w", s.Path, err)
	}

	tf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	raw := make([]task.Raw, 0, len(tf.Tasks))
	for _, def := range tf.Tasks {
		raw = append(raw, task.Raw{
			ID:          def.ID,
			Description: def.Desc,
			Commands:    def.Cmds,
		})
	}
	return raw, nil
}

// Runner returns the literal runner command name.
func (s *Source) Runner() string {
	return RunnerCommand
}

// RequiresCommands reports that directly parsed tasks must carry commands.
func (s *Source) RequiresCommands() bool {
	return true
}
