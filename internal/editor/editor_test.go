package editor

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"taskbridge.dev/internal/options"
	"taskbridge.dev/internal/task"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input     string
		want      Target
		wantError bool
	}{
		{input: "zed", want: TargetZed},
		{input: "vscode", want: TargetVSCode},
		{input: "VSCode", want: TargetVSCode},
		{input: "ZED", want: TargetZed},
		{input: "emacs", wantError: true},
		{input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTarget(tt.input)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				if !strings.Contains(err.Error(), tt.input) {
					t.Errorf("error should name the bad target, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTarget(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultOutputDir(t *testing.T) {
	if dir := DefaultOutputDir(TargetZed); dir != ".zed" {
		t.Errorf("zed output dir = %q, want .zed", dir)
	}
	if dir := DefaultOutputDir(TargetVSCode); dir != ".vscode" {
		t.Errorf("vscode output dir = %q, want .vscode", dir)
	}
}

func TestDefaultOptionsIsolated(t *testing.T) {
	opts := DefaultOptions(TargetZed)
	opts["use_new_terminal"] = false

	if defaultOptions[TargetZed]["use_new_terminal"] != true {
		t.Error("DefaultOptions must return a copy of the table")
	}
}

func TestZed(t *testing.T) {
	tasks := []task.Task{
		{ID: "build", Label: "build", Description: "Build the project", Command: "make all"},
		{ID: "test", Label: "test", Command: "pytest"},
	}

	entries := Zed(tasks, "task", nil)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first["label"] != "build - Build the project" {
		t.Errorf("label = %v, want decorated label", first["label"])
	}
	if first["command"] != "task" {
		t.Errorf("command = %v, want task", first["command"])
	}
	if !reflect.DeepEqual(first["args"], []string{"build"}) {
		t.Errorf("args = %v, want [build]", first["args"])
	}
	if first["use_new_terminal"] != true {
		t.Errorf("default option missing: %v", first)
	}

	second := entries[1]
	if second["label"] != "test" {
		t.Errorf("description-less label = %v, want bare id", second["label"])
	}
}

func TestZedOptionOverrides(t *testing.T) {
	tasks := []task.Task{{ID: "build", Label: "build"}}
	extra := []options.Map{
		{"use_new_terminal": false},
		{"cwd": "/tmp"},
	}

	entries := Zed(tasks, "go-task", extra)
	entry := entries[0]
	if entry["use_new_terminal"] != false {
		t.Errorf("override should win over default, got %v", entry["use_new_terminal"])
	}
	if entry["cwd"] != "/tmp" {
		t.Errorf("extra option missing, got %v", entry)
	}
	if entry["command"] != "go-task" {
		t.Errorf("command = %v, want adopted runner name", entry["command"])
	}
}

func TestVSCode(t *testing.T) {
	tasks := []task.Task{
		{ID: "build", Label: "build", Description: "Build", Command: "make all"},
		{ID: "test", Label: "test", Command: "pytest"},
	}

	doc := VSCode(tasks, "task", nil)
	if doc.Version != "2.0.0" {
		t.Errorf("version = %q, want 2.0.0", doc.Version)
	}
	if len(doc.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(doc.Tasks))
	}

	build := doc.Tasks[0]
	if build.Type != "shell" || build.Command != "task" {
		t.Errorf("unexpected task: %+v", build)
	}
	if !reflect.DeepEqual(build.Args, []string{"build"}) {
		t.Errorf("args = %v, want [build]", build.Args)
	}
	if build.Group.Kind != "build" || build.Group.IsDefault {
		t.Errorf("unexpected group: %+v", build.Group)
	}
	want := options.Map{"echo": true, "reveal": "always", "focus": false, "panel": "shared"}
	if !reflect.DeepEqual(build.Presentation, want) {
		t.Errorf("presentation = %v, want %v", build.Presentation, want)
	}

	// Round-trip through JSON: build carries a description field, test does not.
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Tasks []map[string]any `json:"tasks"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded.Tasks[0]["description"]; !ok {
		t.Error("build entry should carry a description field")
	}
	if _, ok := decoded.Tasks[1]["description"]; ok {
		t.Error("test entry should omit the empty description field")
	}
}

func TestVSCodePresentationShared(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Label: "a"},
		{ID: "b", Label: "b"},
	}
	extra := []options.Map{{"reveal": "silent"}}

	doc := VSCode(tasks, "task", extra)
	if doc.Tasks[0].Presentation["reveal"] != "silent" {
		t.Errorf("override should apply, got %v", doc.Tasks[0].Presentation)
	}
	// The merged presentation object is computed once and shared.
	if !reflect.DeepEqual(doc.Tasks[0].Presentation, doc.Tasks[1].Presentation) {
		t.Error("presentation should be identical across entries")
	}
}

func TestProject(t *testing.T) {
	tasks := []task.Task{{ID: "build", Label: "build"}}

	zed, err := Project(TargetZed, tasks, "task", nil)
	if err != nil {
		t.Fatalf("Project(zed): %v", err)
	}
	if _, ok := zed.([]map[string]any); !ok {
		t.Errorf("zed projection should be a flat list, got %T", zed)
	}

	vscode, err := Project(TargetVSCode, tasks, "task", nil)
	if err != nil {
		t.Fatalf("Project(vscode): %v", err)
	}
	if _, ok := vscode.(*VSCodeDocument); !ok {
		t.Errorf("vscode projection should be a document, got %T", vscode)
	}

	if _, err := Project(Target("emacs"), tasks, "task", nil); err == nil {
		t.Error("expected error for unknown target")
	}
}
