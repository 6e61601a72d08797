package editor

import (
	"fmt"

	"taskbridge.dev/internal/options"
	"taskbridge.dev/internal/task"
)

// Zed projects tasks into Zed's flat task list. Merged options are spread
// into each entry at the top level, so overrides can reshape any field Zed
// understands.
func Zed(tasks []task.Task, runnerCmd string, extra []options.Map) []map[string]any {
	merged := options.Merge(defaultOptions[TargetZed], extra...)

	entries := make([]map[string]any, 0, len(tasks))
	for _, t := range tasks {
		label := t.Label
		if t.Description != "" {
			label = fmt.Sprintf("%s - %s", t.ID, t.Description)
		}

		entry := map[string]any{
			"label":   label,
			"command": runnerCmd,
			"args":    []string{t.ID},
		}
		for k, v := range merged {
			entry[k] = v
		}
		entries = append(entries, entry)
	}
	return entries
}
