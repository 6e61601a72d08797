// Package convert wires the source strategies, the extractor, and the
// projectors into a single one-shot conversion.
package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"taskbridge.dev/internal/editor"
	"taskbridge.dev/internal/logging"
	"taskbridge.dev/internal/options"
	"taskbridge.dev/internal/runner"
	"taskbridge.dev/internal/task"
	"taskbridge.dev/internal/taskfile"
)

// OutputFileName is the file written into the resolved output directory.
const OutputFileName = "tasks.json"

// Config collects everything a conversion run needs. All validation
// happens in New, before any output I/O.
type Config struct {
	// Editor is the target format name ("zed" or "vscode").
	Editor string
	// Source is an explicit taskfile path; empty means auto-detect.
	Source string
	// OutputDir overrides the target's default config subdirectory.
	OutputDir string
	// FromRunner selects the external-listing strategy instead of parsing
	// the taskfile directly.
	FromRunner bool
	// SkipTasks excludes tasks by exact id.
	SkipTasks []string
	// SkipPatterns excludes tasks whose id matches any of these regexps.
	SkipPatterns []string
	// ZedOptions and VSCodeOptions are raw "key: value" fragments merged
	// into the respective target's defaults.
	ZedOptions    []string
	VSCodeOptions []string
}

// Converter performs one conversion or preview. Construct with New; the
// source strategy is fixed for the Converter's lifetime.
type Converter struct {
	target     editor.Target
	source     task.Source
	sourcePath string
	outputDir  string
	extractor  *task.Extractor
	zedExtra   []options.Map
	vscExtra   []options.Map
	runID      string
}

// New validates the configuration and builds a ready-to-run Converter.
// Configuration errors (bad target, malformed option, invalid pattern)
// surface here; for the runner strategy the binary is probed and adopted
// here too.
func New(ctx context.Context, cfg Config) (*Converter, error) {
	target, err := editor.ParseTarget(cfg.Editor)
	if err != nil {
		return nil, err
	}

	zedExtra, err := options.ParseAll(cfg.ZedOptions)
	if err != nil {
		return nil, err
	}
	vscExtra, err := options.ParseAll(cfg.VSCodeOptions)
	if err != nil {
		return nil, err
	}

	patterns, err := task.CompilePatterns(cfg.SkipPatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid skip pattern: %w", err)
	}

	sourcePath, err := taskfile.Resolve(cfg.Source)
	if err != nil {
		return nil, err
	}

	var source task.Source
	if cfg.FromRunner {
		source, err = runner.NewSource(ctx, sourcePath)
		if err != nil {
			return nil, err
		}
	} else {
		source = taskfile.NewSource(sourcePath)
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = editor.DefaultOutputDir(target)
	}

	c := &Converter{
		target:     target,
		source:     source,
		sourcePath: sourcePath,
		outputDir:  outputDir,
		extractor:  task.NewExtractor(cfg.SkipTasks, patterns, source.RequiresCommands()),
		zedExtra:   zedExtra,
		vscExtra:   vscExtra,
		runID:      uuid.New().String(),
	}
	logging.Debug("converter ready",
		"run_id", c.runID,
		"editor", string(target),
		"source", sourcePath,
		"output_dir", outputDir,
		"from_runner", cfg.FromRunner)
	return c, nil
}

// RunID identifies this conversion run in diagnostics.
func (c *Converter) RunID() string {
	return c.runID
}

// Target returns the configured output format.
func (c *Converter) Target() editor.Target {
	return c.target
}

// load runs the source strategy and extraction.
func (c *Converter) load() ([]task.Task, error) {
	logging.Info("reading tasks", "source", c.sourcePath)
	raw, err := c.source.Load()
	if err != nil {
		return nil, err
	}
	tasks := c.extractor.Extract(raw)
	logging.Debug("extracted tasks", "run_id", c.runID, "count", len(tasks))
	return tasks, nil
}

// Result describes a completed conversion. Path is empty when the source
// yielded no tasks and nothing was written.
type Result struct {
	Path      string
	TaskCount int
}

// Convert runs the full pipeline and writes the output file, fully
// overwriting any previous one.
func (c *Converter) Convert() (*Result, error) {
	tasks, err := c.load()
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		logging.Warn("no tasks found, nothing to generate", "source", c.sourcePath)
		return &Result{}, nil
	}
	logging.Info("found tasks", "count", len(tasks))

	extra := c.zedExtra
	if c.target == editor.TargetVSCode {
		extra = c.vscExtra
	}
	doc, err := editor.Project(c.target, tasks, c.source.Runner(), extra)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", OutputFileName, err)
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", c.outputDir, err)
	}
	outputPath := filepath.Join(c.outputDir, OutputFileName)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	logging.Info("generated tasks file", "editor", string(c.target), "path", outputPath)
	return &Result{Path: outputPath, TaskCount: len(tasks)}, nil
}

// Preview prints a fixed-width two-column summary of the extracted tasks
// to w without writing any output file.
func (c *Converter) Preview(w io.Writer) error {
	tasks, err := c.load()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return nil
	}

	fmt.Fprintf(w, "%-20s %-50s\n", "Task ID", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, t := range tasks {
		desc := t.Description
		if r := []rune(desc); len(r) > 50 {
			desc = string(r[:47]) + "..."
		}
		fmt.Fprintf(w, "%-20s %-50s\n", t.ID, desc)
	}
	return nil
}

// Summary returns the extracted id/description pairs without writing
// anything; the MCP surface uses it for structured previews.
func (c *Converter) Summary() ([]TaskSummary, error) {
	tasks, err := c.load()
	if err != nil {
		return nil, err
	}
	summaries := make([]TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, TaskSummary{ID: t.ID, Description: t.Description})
	}
	return summaries, nil
}

// TaskSummary is one row of a preview.
type TaskSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
