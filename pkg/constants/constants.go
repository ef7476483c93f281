// Package constants defines shared constants for the agentos-check CLI.
package constants

const (
	// CLIName is the binary name shown in help and version output.
	CLIName = "agentos-check"

	// FrontmatterDelimiter is the bare token that opens and closes a
	// frontmatter header block.
	FrontmatterDelimiter = "---"

	// DefaultManifestPath is the repository-relative location of the
	// artifact manifest.
	DefaultManifestPath = "scripts/agent-os/manifest.json"
)
