package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kyora-dev/agentos-check/pkg/console"
	"github.com/kyora-dev/agentos-check/pkg/constants"
	"github.com/kyora-dev/agentos-check/pkg/logger"
	"github.com/kyora-dev/agentos-check/pkg/manifest"
	"github.com/kyora-dev/agentos-check/pkg/validation"
)

var listLog = logger.New("cli:list_command")

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the validation units declared in the manifest",
		Long: `List every validation unit the manifest declares, without validating.

Each row shows the artifact path, its kind, and the frontmatter keys that
kind requires. Reference files carry no required keys.

Examples:
  ` + constants.CLIName + ` list
  ` + constants.CLIName + ` list --root /path/to/repo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir, _ := cmd.Flags().GetString("root")
			manifestPath, _ := cmd.Flags().GetString("manifest")

			_, manifestPath, err := resolvePaths(rootDir, manifestPath)
			if err != nil {
				return err
			}

			m, err := manifest.Load(manifestPath)
			if err != nil {
				return err
			}

			units := validation.Collect(m, validation.DefaultRequirements())
			listLog.Printf("Listing %d units", len(units))

			if len(units) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), console.FormatInfoMessage("Manifest declares no artifacts"))
				return nil
			}

			config := console.TableConfig{
				Headers: []string{"Path", "Kind", "Required Keys"},
			}
			for _, unit := range units {
				required := strings.Join(unit.RequiredKeys, ", ")
				if required == "" {
					required = "-"
				}
				config.Rows = append(config.Rows, []string{unit.Path, string(unit.Kind), required})
			}

			fmt.Fprint(cmd.OutOrStdout(), console.RenderTable(config))
			return nil
		},
	}

	cmd.Flags().String("root", ".", "Repository root that declared artifact paths resolve against")
	cmd.Flags().String("manifest", "", "Path to the artifact manifest (default: <root>/"+constants.DefaultManifestPath+")")

	return cmd
}
