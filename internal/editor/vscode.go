package editor

import (
	"taskbridge.dev/internal/options"
	"taskbridge.dev/internal/task"
)

// VSCodeDocument is the schema-versioned tasks.json shape VS Code expects.
type VSCodeDocument struct {
	Version string       `json:"version"`
	Tasks   []VSCodeTask `json:"tasks"`
}

// VSCodeTask is one entry of the document's task list.
type VSCodeTask struct {
	Label        string      `json:"label"`
	Type         string      `json:"type"`
	Command      string      `json:"command"`
	Args         []string    `json:"args"`
	Presentation options.Map `json:"presentation"`
	Group        VSCodeGroup `json:"group"`
	Description  string      `json:"description,omitempty"`
}

// VSCodeGroup assigns the task to a VS Code task group.
type VSCodeGroup struct {
	Kind      string `json:"kind"`
	IsDefault bool   `json:"isDefault"`
}

// vscodeVersion is the tasks.json schema version VS Code currently accepts.
const vscodeVersion = "2.0.0"

// VSCode projects tasks into the versioned tasks.json object. Presentation
// options are merged once and shared across all entries.
func VSCode(tasks []task.Task, runnerCmd string, extra []options.Map) *VSCodeDocument {
	presentation := options.Merge(defaultOptions[TargetVSCode], extra...)

	entries := make([]VSCodeTask, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, VSCodeTask{
			Label:        t.Label,
			Type:         "shell",
			Command:      runnerCmd,
			Args:         []string{t.ID},
			Presentation: presentation,
			Group:        VSCodeGroup{Kind: "build", IsDefault: false},
			Description:  t.Description,
		})
	}

	return &VSCodeDocument{
		Version: vscodeVersion,
		Tasks:   entries,
	}
}
