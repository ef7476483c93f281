package validation

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kyora-dev/agentos-check/pkg/console"
)

// ReportOptions carries the run context shown in the report banner.
type ReportOptions struct {
	RepoRoot     string
	ManifestPath string
	// Version is the manifest's version field, or "unknown" when absent.
	Version string
}

// WriteReport renders the full human-readable run report: banner, one line
// per unit per phase, and the summary with the final verdict. The process
// exit status, not this text, is the machine-readable signal.
func WriteReport(w io.Writer, summary *RunSummary, opts ReportOptions) {
	version := opts.Version
	if version == "" {
		version = "unknown"
	}

	fmt.Fprintln(w, console.FormatSectionHeader("Agent OS Artifact Validator"))
	fmt.Fprintf(w, "Repo root: %s\n", opts.RepoRoot)
	fmt.Fprintf(w, "Manifest:  %s\n", opts.ManifestPath)
	fmt.Fprintf(w, "OS Version: %s\n\n", version)
	fmt.Fprintf(w, "Artifacts to validate: %d\n\n", summary.Total)

	fmt.Fprintln(w, console.FormatInfoMessage("[1/2] Checking file existence..."))
	for _, result := range summary.Results {
		if result.Exists {
			fmt.Fprintln(w, console.FormatSuccessMessage("Exists: "+result.Unit.Path))
		} else {
			fmt.Fprintln(w, console.FormatErrorMessage("Missing: "+result.Unit.Path))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, console.FormatInfoMessage("[2/2] Validating frontmatter..."))
	for _, result := range summary.Results {
		line, show := frontmatterLine(result)
		if show {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, console.FormatSectionHeader("Summary"))
	fmt.Fprint(w, console.RenderTable(kindTable(summary)))
	fmt.Fprintln(w)

	if summary.Passed() {
		fmt.Fprintln(w, console.FormatSuccessMessage(
			fmt.Sprintf("All %d artifacts validated successfully", summary.Total)))
		fmt.Fprintln(w, "Agent OS validation PASSED")
	} else {
		fmt.Fprintln(w, console.FormatErrorMessage(
			fmt.Sprintf("%d error(s) found", summary.Failed)))
		fmt.Fprintln(w, "Agent OS validation FAILED")
	}
}

// frontmatterLine renders one unit's frontmatter-phase line. Units the phase
// skipped (references, missing files) produce no line; their status is fully
// covered by the existence phase.
func frontmatterLine(result Result) (string, bool) {
	switch result.Header {
	case HeaderValid:
		return console.FormatSuccessMessage(
			fmt.Sprintf("Frontmatter valid (%s): %s", result.Unit.Kind, result.Unit.Path)), true
	case HeaderUnreadable:
		return console.FormatErrorMessage(
			fmt.Sprintf("Cannot read file %s: %v", result.Unit.Path, result.ReadErr)), true
	case HeaderAbsent:
		return console.FormatErrorMessage(
			"No valid frontmatter found in: " + result.Unit.Path), true
	case HeaderIncomplete:
		return console.FormatErrorMessage(
			fmt.Sprintf("Missing required frontmatter in %s: %s",
				result.Unit.Path, strings.Join(result.MissingKeys, ", "))), true
	default:
		return "", false
	}
}

// kindTable builds the per-kind pass/fail breakdown for the summary.
func kindTable(summary *RunSummary) console.TableConfig {
	type tally struct {
		total, passed, failed int
	}

	order := []Kind{KindAgent, KindPrompt, KindSkill, KindReference}
	tallies := make(map[Kind]*tally)
	for _, kind := range order {
		tallies[kind] = &tally{}
	}

	for _, result := range summary.Results {
		t := tallies[result.Unit.Kind]
		if t == nil {
			continue
		}
		t.total++
		if result.Failed() {
			t.failed++
		} else {
			t.passed++
		}
	}

	config := console.TableConfig{
		Headers:   []string{"Kind", "Total", "Passed", "Failed"},
		ShowTotal: true,
		TotalRow: []string{
			"all",
			strconv.Itoa(summary.Total),
			strconv.Itoa(summary.Succeeded),
			strconv.Itoa(summary.Failed),
		},
	}
	for _, kind := range order {
		t := tallies[kind]
		if t.total == 0 {
			continue
		}
		config.Rows = append(config.Rows, []string{
			string(kind),
			strconv.Itoa(t.total),
			strconv.Itoa(t.passed),
			strconv.Itoa(t.failed),
		})
	}
	return config
}
