// Package editor maps canonical tasks into the output schemas of the
// supported editor task panels.
package editor

import (
	"fmt"
	"strings"

	"taskbridge.dev/internal/options"
	"taskbridge.dev/internal/task"
)

// Target selects the output schema.
type Target string

const (
	// TargetZed emits a flat list of task objects.
	TargetZed Target = "zed"
	// TargetVSCode emits the schema-versioned tasks.json object.
	TargetVSCode Target = "vscode"
)

// Targets lists the supported targets in presentation order.
var Targets = []Target{TargetZed, TargetVSCode}

// ParseTarget validates a target format string, case-insensitively.
func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(s)) {
	case TargetZed:
		return TargetZed, nil
	case TargetVSCode:
		return TargetVSCode, nil
	default:
		return "", fmt.Errorf("unsupported editor %q (must be 'zed' or 'vscode')", s)
	}
}

// Default per-target presentation options, injected into the merge step.
var defaultOptions = map[Target]options.Map{
	TargetZed: {
		"use_new_terminal": true,
	},
	TargetVSCode: {
		"echo":   true,
		"reveal": "always",
		"focus":  false,
		"panel":  "shared",
	},
}

// DefaultOptions returns a copy of the target's default option table.
func DefaultOptions(target Target) options.Map {
	return options.Merge(defaultOptions[target])
}

// DefaultOutputDir returns the conventional config subdirectory for the
// target.
func DefaultOutputDir(target Target) string {
	switch target {
	case TargetVSCode:
		return ".vscode"
	default:
		return ".zed"
	}
}

// Project dispatches to the target's projector. The result marshals
// directly into the output document.
func Project(target Target, tasks []task.Task, runnerCmd string, extra []options.Map) (any, error) {
	switch target {
	case TargetZed:
		return Zed(tasks, runnerCmd, extra), nil
	case TargetVSCode:
		return VSCode(tasks, runnerCmd, extra), nil
	default:
		return nil, fmt.Errorf("unsupported editor %q (must be 'zed' or 'vscode')", string(target))
	}
}
