package cli

import (
	"github.com/spf13/cobra"

	"taskbridge.dev/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server exposing the conversion tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := cmdServe(cmd.Root().Version, addr); code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "",
		"HTTP listen address (e.g. :8080); empty serves over stdio")

	return cmd
}

func cmdServe(version, addr string) int {
	s := server.NewServer(version)

	var err error
	if addr == "" {
		err = s.Serve()
	} else {
		err = s.ServeHTTP(addr)
	}
	if err != nil {
		return fail(err)
	}
	return 0
}
