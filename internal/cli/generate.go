package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskbridge.dev/internal/convert"
)

func newGenerateCmd() *cobra.Command {
	var (
		editorName    string
		outputDir     string
		fromRunner    bool
		skipTasks     []string
		skipPatterns  []string
		zedOptions    []string
		vscodeOptions []string
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"convert"},
		Short:   "Generate a tasks.json file for the chosen editor",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := cmdGenerate(cmd, convert.Config{
				Editor:        editorName,
				Source:        globalSource,
				OutputDir:     outputDir,
				FromRunner:    fromRunner,
				SkipTasks:     skipTasks,
				SkipPatterns:  skipPatterns,
				ZedOptions:    zedOptions,
				VSCodeOptions: vscodeOptions,
			})
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&editorName, "editor", "e", "zed",
		"Target editor (zed or vscode)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"Output directory (default: the editor's config directory, e.g. .zed)")
	cmd.Flags().BoolVar(&fromRunner, "from-runner", false,
		"List tasks through the installed task runner instead of parsing the Taskfile")
	cmd.Flags().StringSliceVar(&skipTasks, "skip", nil,
		"Task names to exclude (repeatable or comma-separated)")
	cmd.Flags().StringArrayVar(&skipPatterns, "skip-pattern", nil,
		"Regular expressions matching task names to exclude (repeatable)")
	cmd.Flags().StringArrayVar(&zedOptions, "zed-option", nil,
		"Raw 'key: value' fragment merged into every Zed entry (repeatable)")
	cmd.Flags().StringArrayVar(&vscodeOptions, "vscode-option", nil,
		"Raw 'key: value' fragment merged into the VS Code presentation (repeatable)")

	return cmd
}

func cmdGenerate(cmd *cobra.Command, cfg convert.Config) int {
	c, err := convert.New(cmd.Context(), cfg)
	if err != nil {
		return fail(err)
	}

	res, err := c.Convert()
	if err != nil {
		return fail(err)
	}
	if res.Path == "" {
		fmt.Fprintln(os.Stderr, "No tasks found, nothing was generated.")
		return 0
	}

	fmt.Fprintf(os.Stderr, "%s  wrote %s (%d tasks)\n",
		color(colorGreen+colorBold, "[OK]"), res.Path, res.TaskCount)
	return 0
}
