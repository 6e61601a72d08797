package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"taskbridge.dev/internal/convert"
	"taskbridge.dev/internal/editor"
)

// convertResponse is the MCP result for a conversion run.
type convertResponse struct {
	RunID      string `json:"run_id"`
	Editor     string `json:"editor"`
	OutputPath string `json:"output_path,omitempty"`
	TaskCount  int    `json:"task_count"`
	Message    string `json:"message,omitempty"`
}

// sourceProperties are the input-schema fields shared by the convert and
// preview tools.
func sourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"source": map[string]interface{}{
			"type":        "string",
			"description": "Path to the taskfile (default: auto-detect from git root or current directory)",
		},
		"from_runner": map[string]interface{}{
			"type":        "boolean",
			"description": "Obtain tasks by invoking the installed task runner instead of parsing the taskfile (default: false)",
		},
		"skip_tasks": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Task IDs to exclude",
		},
		"skip_patterns": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Regular expressions; tasks whose ID matches are excluded",
		},
	}
}

// registerConvertTool registers convert_tasks.
func (s *Server) registerConvertTool() {
	properties := sourceProperties()
	properties["editor"] = map[string]interface{}{
		"type":        "string",
		"description": "Target editor format: 'zed' or 'vscode'",
	}
	properties["output_dir"] = map[string]interface{}{
		"type":        "string",
		"description": "Output directory for tasks.json (default: .zed/ or .vscode/)",
	}
	properties["options"] = map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Raw YAML 'key: value' fragments merged into the generated entries",
	}

	tool := mcp.Tool{
		Name:        "convert_tasks",
		Description: "Generate an editor tasks.json from the project's taskfile",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   []string{"editor"},
		},
	}

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		cfg := convert.Config{
			Editor:       stringArg(args, "editor"),
			Source:       stringArg(args, "source"),
			OutputDir:    stringArg(args, "output_dir"),
			FromRunner:   boolArg(args, "from_runner"),
			SkipTasks:    stringSliceArg(args, "skip_tasks"),
			SkipPatterns: stringSliceArg(args, "skip_patterns"),
		}
		applyOptions(&cfg, stringSliceArg(args, "options"))

		c, err := convert.New(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res, err := c.Convert()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		resp := convertResponse{
			RunID:      c.RunID(),
			Editor:     string(c.Target()),
			OutputPath: res.Path,
			TaskCount:  res.TaskCount,
		}
		if res.Path == "" {
			resp.Message = "no tasks found, nothing was generated"
		}
		return jsonResult(resp)
	}

	s.mcpServer.AddTool(tool, handler)
}

// registerPreviewTool registers preview_tasks.
func (s *Server) registerPreviewTool() {
	tool := mcp.Tool{
		Name:        "preview_tasks",
		Description: "List the tasks that would be generated, without writing anything",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: sourceProperties(),
		},
	}

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		c, err := convert.New(ctx, convert.Config{
			// The preview path is format-independent; any valid target works.
			Editor:       string(editor.TargetZed),
			Source:       stringArg(args, "source"),
			FromRunner:   boolArg(args, "from_runner"),
			SkipTasks:    stringSliceArg(args, "skip_tasks"),
			SkipPatterns: stringSliceArg(args, "skip_patterns"),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		summaries, err := c.Summary()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(map[string]any{
			"run_id": c.RunID(),
			"tasks":  summaries,
		})
	}

	s.mcpServer.AddTool(tool, handler)
}

// registerListEditorsTool registers list_editors.
func (s *Server) registerListEditorsTool() {
	tool := mcp.Tool{
		Name:        "list_editors",
		Description: "List supported editor target formats and their default options",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		editors := make(map[string]any, len(editor.Targets))
		for _, target := range editor.Targets {
			editors[string(target)] = map[string]any{
				"default_output_dir": editor.DefaultOutputDir(target),
				"default_options":    editor.DefaultOptions(target),
			}
		}
		return jsonResult(map[string]any{"editors": editors})
	}

	s.mcpServer.AddTool(tool, handler)
}

// applyOptions routes raw option fragments to the slot matching the
// requested editor, accepting any casing ParseTarget accepts. An editor
// name ParseTarget rejects falls through to the zed slot; convert.New
// rejects the name before the options are ever read.
func applyOptions(cfg *convert.Config, opts []string) {
	if target, err := editor.ParseTarget(cfg.Editor); err == nil && target == editor.TargetVSCode {
		cfg.VSCodeOptions = opts
		return
	}
	cfg.ZedOptions = opts
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]any, key string) bool {
	v, ok := args[key].(bool)
	return ok && v
}

func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
