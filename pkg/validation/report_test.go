//go:build !integration

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportFor(summary *RunSummary) string {
	var out strings.Builder
	WriteReport(&out, summary, ReportOptions{
		RepoRoot:     "/repo",
		ManifestPath: "/repo/scripts/agent-os/manifest.json",
		Version:      "1.0.0",
	})
	return out.String()
}

func summarize(results []Result) *RunSummary {
	summary := &RunSummary{Total: len(results), Results: results}
	for _, r := range results {
		if r.Failed() {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

func TestWriteReport_Passing(t *testing.T) {
	summary := summarize([]Result{
		{
			Unit:   Unit{Path: "agents/ops.md", Kind: KindAgent, RequiredKeys: []string{"description"}},
			Exists: true,
			Header: HeaderValid,
		},
	})

	output := reportFor(summary)

	assert.Contains(t, output, "Agent OS Artifact Validator")
	assert.Contains(t, output, "OS Version: 1.0.0")
	assert.Contains(t, output, "Artifacts to validate: 1")
	assert.Contains(t, output, "[1/2] Checking file existence...")
	assert.Contains(t, output, "Exists: agents/ops.md")
	assert.Contains(t, output, "[2/2] Validating frontmatter...")
	assert.Contains(t, output, "Frontmatter valid (agent): agents/ops.md")
	assert.Contains(t, output, "All 1 artifacts validated successfully")
	assert.Contains(t, output, "Agent OS validation PASSED")
}

func TestWriteReport_FailureLines(t *testing.T) {
	summary := summarize([]Result{
		{
			Unit: Unit{Path: "agents/gone.md", Kind: KindAgent},
		},
		{
			Unit:   Unit{Path: "prompts/empty.md", Kind: KindPrompt},
			Exists: true,
			Header: HeaderAbsent,
		},
		{
			Unit:        Unit{Path: "prompts/partial.md", Kind: KindPrompt},
			Exists:      true,
			Header:      HeaderIncomplete,
			MissingKeys: []string{"description", "agent"},
		},
		{
			Unit:    Unit{Path: "skills/locked/SKILL.md", Kind: KindSkill},
			Exists:  true,
			Header:  HeaderUnreadable,
			ReadErr: errors.New("permission denied"),
		},
	})

	output := reportFor(summary)

	assert.Contains(t, output, "Missing: agents/gone.md")
	assert.Contains(t, output, "No valid frontmatter found in: prompts/empty.md")
	assert.Contains(t, output, "Missing required frontmatter in prompts/partial.md: description, agent")
	assert.Contains(t, output, "Cannot read file skills/locked/SKILL.md: permission denied")
	assert.Contains(t, output, "4 error(s) found")
	assert.Contains(t, output, "Agent OS validation FAILED")
}

func TestWriteReport_SkippedUnitsProduceNoFrontmatterLine(t *testing.T) {
	summary := summarize([]Result{
		{
			Unit:   Unit{Path: "skills/x/ref.md", Kind: KindReference},
			Exists: true,
			Header: HeaderSkipped,
		},
	})

	output := reportFor(summary)

	assert.Contains(t, output, "Exists: skills/x/ref.md")
	assert.NotContains(t, output, "Frontmatter valid", "references are not frontmatter-checked")
	assert.Contains(t, output, "Agent OS validation PASSED")
}

func TestWriteReport_UnknownVersion(t *testing.T) {
	var out strings.Builder
	WriteReport(&out, summarize(nil), ReportOptions{RepoRoot: "/repo", ManifestPath: "m.json"})
	assert.Contains(t, out.String(), "OS Version: unknown")
}

func TestWriteReport_KindBreakdownTable(t *testing.T) {
	summary := summarize([]Result{
		{Unit: Unit{Path: "agents/a.md", Kind: KindAgent}, Exists: true, Header: HeaderValid},
		{Unit: Unit{Path: "agents/b.md", Kind: KindAgent}},
		{Unit: Unit{Path: "skills/s/ref.md", Kind: KindReference}, Exists: true, Header: HeaderSkipped},
	})

	output := reportFor(summary)

	assert.Contains(t, output, "Kind")
	assert.Contains(t, output, "agent")
	assert.Contains(t, output, "reference")
	assert.Contains(t, output, "all")
}
