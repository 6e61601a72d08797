// Package task defines the canonical task record produced by every source
// strategy and the extraction rules that turn raw descriptors into it.
package task

// Task is the canonical, source-independent task record.
type Task struct {
	// ID is the task's unique identifier from the source document or listing.
	ID string
	// Label defaults to ID; projectors may decorate it further.
	Label string
	// Description may be empty.
	Description string
	// Command is the reconstructed shell command line. It is empty for
	// runner-sourced tasks, where execution is delegated to the runner binary.
	Command string
}

// Raw is an untyped descriptor as produced by a Source, before skip rules
// and command assembly are applied.
type Raw struct {
	ID          string
	Description string
	Commands    []string
}

// Source yields raw task descriptors from a task definition source.
// A Source is fixed at construction time and is never swapped mid-run.
type Source interface {
	// Load obtains the raw descriptors, in source order.
	Load() ([]Raw, error)

	// Runner returns the executable name the generated task entries will
	// invoke (the literal "task" for direct parsing, or the probed binary).
	Runner() string

	// RequiresCommands reports whether descriptors without commands should
	// be dropped during extraction.
	RequiresCommands() bool
}
