// Package manifest loads and validates the Agent OS artifact manifest: the
// document declaring which agent, prompt, and skill artifacts must exist and
// which frontmatter keys each kind must carry.
package manifest

import (
	"encoding/json"
	"fmt"
)

// Manifest is the artifact manifest document. Any section may be absent:
// an absent artifact list declares zero artifacts, and an absent requirement
// falls back to the per-kind defaults threaded into collection.
type Manifest struct {
	Version                 string       `json:"version" yaml:"version"`
	Artifacts               Artifacts    `json:"artifacts" yaml:"artifacts"`
	FrontmatterRequirements Requirements `json:"frontmatter_requirements" yaml:"frontmatter_requirements"`
}

// Artifacts declares the artifact paths per kind, in declaration order.
type Artifacts struct {
	Agents  []string     `json:"agents" yaml:"agents"`
	Prompts []string     `json:"prompts" yaml:"prompts"`
	Skills  []SkillEntry `json:"skills" yaml:"skills"`
}

// Requirements carries the per-kind required frontmatter keys. A nil entry
// means the manifest did not override that kind's defaults.
type Requirements struct {
	Agents  *RequiredKeys `json:"agents" yaml:"agents"`
	Prompts *RequiredKeys `json:"prompts" yaml:"prompts"`
	Skills  *RequiredKeys `json:"skills" yaml:"skills"`
}

// RequiredKeys is one kind's required frontmatter key list.
type RequiredKeys struct {
	Required []string `json:"required" yaml:"required"`
}

// SkillEntry is one entry of the skills list. The manifest schema allows two
// variants: a bare path string, or a structured record with a root path and
// reference paths. The variant is fixed at decode time.
type SkillEntry struct {
	bare       bool
	path       string
	root       string
	references []string
}

// BareSkill constructs the bare-path variant.
func BareSkill(path string) SkillEntry {
	return SkillEntry{bare: true, path: path}
}

// StructuredSkill constructs the structured variant. Root may be empty, in
// which case the entry contributes only its references.
func StructuredSkill(root string, references []string) SkillEntry {
	return SkillEntry{root: root, references: references}
}

// Bare returns the bare path and true when this is the bare variant.
func (e SkillEntry) Bare() (string, bool) {
	return e.path, e.bare
}

// Structured returns the root path and reference paths when this is the
// structured variant.
func (e SkillEntry) Structured() (root string, references []string, ok bool) {
	if e.bare {
		return "", nil, false
	}
	return e.root, e.references, true
}

// skillRecord is the wire shape of the structured variant.
type skillRecord struct {
	Root       string   `json:"root" yaml:"root"`
	References []string `json:"references" yaml:"references"`
}

// UnmarshalJSON decodes either a JSON string or a structured record.
func (e *SkillEntry) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		*e = BareSkill(path)
		return nil
	}

	var record skillRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("skill entry must be a path or a {root, references} record: %w", err)
	}
	*e = StructuredSkill(record.Root, record.References)
	return nil
}

// UnmarshalYAML decodes either a YAML string or a structured record.
func (e *SkillEntry) UnmarshalYAML(unmarshal func(any) error) error {
	var path string
	if err := unmarshal(&path); err == nil {
		*e = BareSkill(path)
		return nil
	}

	var record skillRecord
	if err := unmarshal(&record); err != nil {
		return fmt.Errorf("skill entry must be a path or a {root, references} record: %w", err)
	}
	*e = StructuredSkill(record.Root, record.References)
	return nil
}
