package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyora-dev/agentos-check/pkg/constants"
)

// NewVersionCommand creates the version command. The version string is
// injected at build time by the main package.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the " + constants.CLIName + " version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.CLIName, version)
		},
	}
}
