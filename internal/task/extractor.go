package task

import (
	"regexp"
	"strings"

	"taskbridge.dev/internal/logging"
)

// Extractor filters and canonicalizes raw descriptors. It is pure with
// respect to its inputs: the same descriptors and rules always yield the
// same tasks.
type Extractor struct {
	// Skip holds task IDs excluded by exact match.
	Skip map[string]bool
	// SkipPatterns excludes any task whose ID matches one of the patterns.
	SkipPatterns []*regexp.Regexp
	// RequireCommands drops descriptors that carry no commands. Direct
	// parsing sets this; the runner strategy does not reconstruct commands.
	RequireCommands bool
}

// NewExtractor builds an Extractor from literal skip IDs and compiled
// skip patterns.
func NewExtractor(skipIDs []string, patterns []*regexp.Regexp, requireCommands bool) *Extractor {
	skip := make(map[string]bool, len(skipIDs))
	for _, id := range skipIDs {
		skip[id] = true
	}
	return &Extractor{
		Skip:            skip,
		SkipPatterns:    patterns,
		RequireCommands: requireCommands,
	}
}

// Extract converts raw descriptors into canonical tasks, preserving input
// order. Descriptors with an empty ID are dropped silently; skipped IDs are
// logged at debug level.
func (e *Extractor) Extract(raw []Raw) []Task {
	tasks := make([]Task, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		if e.skipped(r.ID) {
			logging.Debug("skipping task", "id", r.ID)
			continue
		}

		command := ""
		if e.RequireCommands {
			if len(r.Commands) == 0 {
				// Nothing to run.
				continue
			}
			command = strings.Join(r.Commands, " && ")
		}

		tasks = append(tasks, Task{
			ID:          r.ID,
			Label:       r.ID,
			Description: r.Description,
			Command:     command,
		})
	}
	return tasks
}

func (e *Extractor) skipped(id string) bool {
	if e.Skip[id] {
		return true
	}
	for _, pattern := range e.SkipPatterns {
		if pattern.MatchString(id) {
			return true
		}
	}
	return false
}

// CompilePatterns compiles skip pattern strings, reporting the first
// invalid expression.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
