package validation

import (
	"github.com/kyora-dev/agentos-check/pkg/logger"
	"github.com/kyora-dev/agentos-check/pkg/parser"
)

var validateLog = logger.New("validation:validate")

// FS is the filesystem collaborator the validator runs against. Paths are
// repository-relative. ReadFile must fail with an error (not panic) for
// unreadable files so the run can record the unit and continue.
type FS interface {
	Exists(path string) bool
	ReadFile(path string) (string, error)
}

// HeaderStatus is the outcome of a unit's frontmatter phase.
type HeaderStatus int

const (
	// HeaderSkipped means the unit was not evaluated in the frontmatter
	// phase: reference units are exempt, and missing files are already
	// reported by the existence phase.
	HeaderSkipped HeaderStatus = iota
	// HeaderValid means every required key is present and non-empty.
	HeaderValid
	// HeaderUnreadable means the file exists but its content could not be
	// read. Distinct from HeaderAbsent so the report does not conflate an
	// I/O failure with a missing header.
	HeaderUnreadable
	// HeaderAbsent means the file has no valid frontmatter block.
	HeaderAbsent
	// HeaderIncomplete means the frontmatter is missing required keys.
	HeaderIncomplete
)

// Result is one unit's validation outcome, consumed by the run summary.
type Result struct {
	Unit   Unit
	Exists bool
	Header HeaderStatus
	// MissingKeys lists every required key that is absent or empty, in
	// required-key order, when Header is HeaderIncomplete.
	MissingKeys []string
	// ReadErr carries the read failure when Header is HeaderUnreadable.
	ReadErr error
}

// Failed reports the unit's overall status. A missing file counts once: the
// frontmatter phase skips it rather than failing it a second time.
func (r Result) Failed() bool {
	if !r.Exists {
		return true
	}
	switch r.Header {
	case HeaderUnreadable, HeaderAbsent, HeaderIncomplete:
		return true
	default:
		return false
	}
}

// RunSummary aggregates one full validation run.
type RunSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []Result
}

// Passed reports whether the run had zero failures across both phases.
func (s *RunSummary) Passed() bool {
	return s.Failed == 0
}

// Run validates every unit against the filesystem collaborator and returns
// the aggregated summary. It runs in exactly two phases over the whole unit
// list: first existence for all units, then frontmatter for the units the
// existence phase cleared. Every per-unit error is converted into a Result;
// one bad artifact never prevents evaluation of the rest.
func Run(units []Unit, fs FS) *RunSummary {
	validateLog.Printf("Validating %d units", len(units))

	results := make([]Result, len(units))

	// Phase 1: existence for 100% of units. The frontmatter phase decides
	// which units to attempt based on these outcomes.
	for i, unit := range units {
		results[i] = Result{
			Unit:   unit,
			Exists: fs.Exists(unit.Path),
			Header: HeaderSkipped,
		}
	}

	// Phase 2: frontmatter for existing, non-reference units.
	for i := range results {
		if results[i].Unit.Kind == KindReference || !results[i].Exists {
			continue
		}
		checkHeader(&results[i], fs)
	}

	summary := &RunSummary{Total: len(units), Results: results}
	for _, r := range results {
		if r.Failed() {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}

	validateLog.Printf("Run complete: total=%d, succeeded=%d, failed=%d",
		summary.Total, summary.Succeeded, summary.Failed)
	return summary
}

// checkHeader runs the frontmatter check for one unit and records the
// outcome on the result.
func checkHeader(result *Result, fs FS) {
	content, err := fs.ReadFile(result.Unit.Path)
	if err != nil {
		validateLog.Printf("Unreadable artifact: path=%s, err=%v", result.Unit.Path, err)
		result.Header = HeaderUnreadable
		result.ReadErr = err
		return
	}

	frontmatter := parser.ExtractFrontmatterFromContent(content)
	if frontmatter == nil {
		result.Header = HeaderAbsent
		return
	}

	// Collect every unsatisfied key, not just the first.
	var missing []string
	for _, key := range result.Unit.RequiredKeys {
		value, ok := frontmatter.Get(key)
		if !ok || !parser.Truthy(value) {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		result.Header = HeaderIncomplete
		result.MissingKeys = missing
		return
	}
	result.Header = HeaderValid
}
