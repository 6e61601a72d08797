package taskfile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when the document decodes to nothing.
var ErrEmpty = errors.New("taskfile is empty")

// SchemaError reports a document that parsed but does not have the
// required shape.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return e.Msg
}

// document is the top-level shape. Tasks stays a raw node so the mapping
// check and order-preserving iteration happen explicitly.
type document struct {
	Version string    `yaml:"version"`
	Tasks   yaml.Node `yaml:"tasks"`
}

// Parse decodes a Taskfile document. An absent tasks section yields an
// empty task list; a tasks section of the wrong kind is a SchemaError.
func Parse(data []byte) (*Taskfile, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML in taskfile: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmpty
	}
	content := root.Content[0]
	if content.Kind == yaml.ScalarNode && content.Tag == "!!null" {
		return nil, ErrEmpty
	}

	var doc document
	if err := content.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid taskfile structure: %w", err)
	}

	tf := &Taskfile{Version: doc.Version}
	if doc.Tasks.Kind == 0 || (doc.Tasks.Kind == yaml.ScalarNode && doc.Tasks.Tag == "!!null") {
		return tf, nil
	}
	if doc.Tasks.Kind != yaml.MappingNode {
		return nil, &SchemaError{Msg: "'tasks' section must be a mapping"}
	}

	for i := 0; i+1 < len(doc.Tasks.Content); i += 2 {
		key := doc.Tasks.Content[i]
		value := doc.Tasks.Content[i+1]

		def := TaskDef{ID: key.Value}
		switch value.Kind {
		case yaml.ScalarNode:
			// Bare string form: the value is the single command.
			if value.Tag != "!!null" {
				def.Cmds = []string{value.Value}
			}
		case yaml.MappingNode:
			var body struct {
				Desc string      `yaml:"desc"`
				Cmds commandList `yaml:"cmds"`
			}
			if err := value.Decode(&body); err != nil {
				return nil, fmt.Errorf("task %q: %w", key.Value, err)
			}
			def.Desc = body.Desc
			def.Cmds = body.Cmds
		}
		// Other kinds leave Cmds empty; extraction drops commandless tasks.

		tf.Tasks = append(tf.Tasks, def)
	}

	return tf, nil
}
