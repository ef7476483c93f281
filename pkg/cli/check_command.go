// Package cli implements the agentos-check commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kyora-dev/agentos-check/pkg/constants"
	"github.com/kyora-dev/agentos-check/pkg/fileutil"
	"github.com/kyora-dev/agentos-check/pkg/logger"
	"github.com/kyora-dev/agentos-check/pkg/manifest"
	"github.com/kyora-dev/agentos-check/pkg/validation"
)

var checkLog = logger.New("cli:check_command")

// ErrValidationFailed is returned when a check run finishes with failures.
// The report has already been printed; the error exists only to drive the
// process exit status.
var ErrValidationFailed = errors.New("validation failed")

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate declared Agent OS artifacts against the manifest",
		Long: `Validate the artifacts declared in the Agent OS manifest.

Only declared artifacts are checked; the rest of the repository is never
scanned. Validation runs in two phases: every declared path is checked for
existence, then every existing agent, prompt, and skill file is checked for
the frontmatter keys its kind requires. Skill reference files are checked
for existence only.

Exit status is 0 when all checks pass and 1 otherwise.

Examples:
  ` + constants.CLIName + ` check
  ` + constants.CLIName + ` check --root /path/to/repo
  ` + constants.CLIName + ` check --manifest custom/manifest.yml
  ` + constants.CLIName + ` check --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir, _ := cmd.Flags().GetString("root")
			manifestPath, _ := cmd.Flags().GetString("manifest")
			watch, _ := cmd.Flags().GetBool("watch")

			rootDir, manifestPath, err := resolvePaths(rootDir, manifestPath)
			if err != nil {
				return err
			}

			if watch {
				return watchAndCheck(cmd.OutOrStdout(), rootDir, manifestPath)
			}

			summary, err := runCheck(cmd.OutOrStdout(), rootDir, manifestPath)
			if err != nil {
				return err
			}
			if !summary.Passed() {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().String("root", ".", "Repository root that declared artifact paths resolve against")
	cmd.Flags().String("manifest", "", "Path to the artifact manifest (default: <root>/"+constants.DefaultManifestPath+")")
	cmd.Flags().Bool("watch", false, "Re-run validation when the manifest or declared artifacts change")

	return cmd
}

// resolvePaths normalizes the root directory and applies the default
// manifest location when no explicit manifest path was given.
func resolvePaths(rootDir, manifestPath string) (string, string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve repository root %s: %w", rootDir, err)
	}
	if !fileutil.DirExists(absRoot) {
		return "", "", fmt.Errorf("repository root does not exist: %s", absRoot)
	}

	if manifestPath == "" {
		manifestPath = filepath.Join(absRoot, filepath.FromSlash(constants.DefaultManifestPath))
	} else if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(absRoot, manifestPath)
	}

	return absRoot, manifestPath, nil
}

// runCheck executes one full validation run and prints the report.
// A manifest loading failure is fatal and returned as an error; per-artifact
// problems are part of the summary, never errors.
func runCheck(out io.Writer, rootDir, manifestPath string) (*validation.RunSummary, error) {
	checkLog.Printf("Running check: root=%s, manifest=%s", rootDir, manifestPath)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		// Fatal: reported once by the caller, before any unit is evaluated.
		return nil, err
	}

	units := validation.Collect(m, validation.DefaultRequirements())
	summary := validation.Run(units, fileutil.NewRoot(rootDir))

	validation.WriteReport(out, summary, validation.ReportOptions{
		RepoRoot:     rootDir,
		ManifestPath: manifestPath,
		Version:      m.Version,
	})
	return summary, nil
}
