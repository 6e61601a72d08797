// Package cli implements the taskbridge command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskbridge.dev/internal/logging"
)

// Package-level globals bound to persistent flags on the root command.
var (
	globalSource  string
	globalVerbose bool
)

// exitError carries a specific exit code through cobra's RunE without
// printing anything extra. The message is already on stderr by the time
// this is returned.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	return run(newRootCmd(version))
}

// run executes the command tree and funnels every failure into an exit
// code. Subcommand failures arrive as exitError with the message already
// printed; cobra's own errors (unknown subcommand, bad flag) are silenced
// by SilenceErrors and have to be reported here.
func run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		if ee, ok := err.(*exitError); ok {
			return ee.code
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "taskbridge",
		Short:   "Generate editor task configurations from a Taskfile",
		Version: version,
		Long: `taskbridge converts task definitions into editor task configurations.

It reads tasks either directly from a Taskfile (Taskfile.yml) or from
the output of an installed task runner, and writes a tasks.json file
for Zed or VS Code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(globalVerbose)
		},
	}

	cmd.PersistentFlags().StringVar(&globalSource, "source", "",
		"Path to the Taskfile (default: auto-detect from git root or current directory)")
	cmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false,
		"Enable debug logging")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// fail prints an error the way every subcommand reports failures and
// returns the non-zero exit code to hand back through exitError.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
