package cli

import (
	"os"

	"github.com/spf13/cobra"

	"taskbridge.dev/internal/convert"
)

func newPreviewCmd() *cobra.Command {
	var (
		fromRunner   bool
		skipTasks    []string
		skipPatterns []string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the tasks that would be generated, without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := cmdPreview(cmd, convert.Config{
				// The preview table is editor-independent; any supported
				// target keeps the pipeline happy.
				Editor:       "zed",
				Source:       globalSource,
				FromRunner:   fromRunner,
				SkipTasks:    skipTasks,
				SkipPatterns: skipPatterns,
			})
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromRunner, "from-runner", false,
		"List tasks through the installed task runner instead of parsing the Taskfile")
	cmd.Flags().StringSliceVar(&skipTasks, "skip", nil,
		"Task names to exclude (repeatable or comma-separated)")
	cmd.Flags().StringArrayVar(&skipPatterns, "skip-pattern", nil,
		"Regular expressions matching task names to exclude (repeatable)")

	return cmd
}

func cmdPreview(cmd *cobra.Command, cfg convert.Config) int {
	c, err := convert.New(cmd.Context(), cfg)
	if err != nil {
		return fail(err)
	}
	if err := c.Preview(os.Stdout); err != nil {
		return fail(err)
	}
	return 0
}
