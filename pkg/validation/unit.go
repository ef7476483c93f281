// Package validation implements the manifest-driven artifact validation
// engine: collecting validation units from the manifest, running the
// existence and frontmatter checks, and aggregating the run summary.
package validation

// Kind classifies a validation unit by its manifest section.
type Kind string

const (
	KindAgent     Kind = "agent"
	KindPrompt    Kind = "prompt"
	KindSkill     Kind = "skill"
	KindReference Kind = "reference"
)

// Unit is one validation task: a declared path, its kind, and the
// frontmatter keys it must carry. Units are immutable once collected and
// live only for the duration of one run.
//
// Reference units always carry an empty required-key set: references are
// checked for existence only, never for frontmatter.
type Unit struct {
	Path         string
	Kind         Kind
	RequiredKeys []string
}

// Defaults carries the fallback required-key sets used when the manifest
// omits a kind's frontmatter requirements. They are threaded into collection
// explicitly so tests can override them without global state.
type Defaults struct {
	Agents  []string
	Prompts []string
	Skills  []string
}

// DefaultRequirements returns the standard fallback required-key sets.
func DefaultRequirements() Defaults {
	return Defaults{
		Agents:  []string{"description"},
		Prompts: []string{"description", "agent"},
		Skills:  []string{"name", "description"},
	}
}
