// Package taskfile implements the direct-parse source strategy: decoding a
// Taskfile.yml document into raw task descriptors without invoking the
// task runner.
package taskfile

import "gopkg.in/yaml.v3"

// Taskfile is the decoded task definition document. Tasks preserve the
// order they appear in the document.
type Taskfile struct {
	Version string
	Tasks   []TaskDef
}

// TaskDef is one entry of the "tasks" mapping, resolved from either form
// the document allows: a bare string (single command, no description) or a
// mapping with optional desc and cmds.
type TaskDef struct {
	ID   string
	Desc string
	Cmds []string
}

// commandList decodes the "cmds" value in either shape go-task accepts:
// a plain scalar, or a sequence whose items are scalars or {cmd: ...}
// mappings. Entries that carry no runnable command (nulls, task
// references) are dropped.
type commandList []string

func (c *commandList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			*c = append(*c, node.Value)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				if item.Tag != "!!null" {
					*c = append(*c, item.Value)
				}
			case yaml.MappingNode:
				var long struct {
					Cmd string `yaml:"cmd"`
				}
				if err := item.Decode(&long); err != nil {
					return err
				}
				if long.Cmd != "" {
					*c = append(*c, long.Cmd)
				}
			}
		}
	}
	return nil
}
