// Command agentos-check validates the Agent OS artifacts declared in the
// repository manifest. Exit status 0 means every check passed; 1 means
// validation failures were found or the manifest could not be loaded.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyora-dev/agentos-check/pkg/cli"
	"github.com/kyora-dev/agentos-check/pkg/constants"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Manifest-driven Agent OS artifact validator",
		Long: constants.CLIName + ` validates the agent, prompt, and skill artifacts
declared in the Agent OS manifest: every declared path must exist, and every
agent, prompt, and skill file must carry its required frontmatter keys.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		cli.NewCheckCommand(),
		cli.NewListCommand(),
		cli.NewVersionCommand(version),
	)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrValidationFailed) {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}
