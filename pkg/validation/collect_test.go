//go:build !integration

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyora-dev/agentos-check/pkg/manifest"
)

func TestCollect_OrderAndDefaults(t *testing.T) {
	m := &manifest.Manifest{
		Artifacts: manifest.Artifacts{
			Agents:  []string{"agents/ops.md", "agents/review.md"},
			Prompts: []string{"prompts/triage.md"},
			Skills: []manifest.SkillEntry{
				manifest.BareSkill("skills/bare/SKILL.md"),
			},
		},
	}

	units := Collect(m, DefaultRequirements())
	require.Len(t, units, 4)

	assert.Equal(t, Unit{Path: "agents/ops.md", Kind: KindAgent, RequiredKeys: []string{"description"}}, units[0])
	assert.Equal(t, Unit{Path: "agents/review.md", Kind: KindAgent, RequiredKeys: []string{"description"}}, units[1])
	assert.Equal(t, Unit{Path: "prompts/triage.md", Kind: KindPrompt, RequiredKeys: []string{"description", "agent"}}, units[2])
	assert.Equal(t, Unit{Path: "skills/bare/SKILL.md", Kind: KindSkill, RequiredKeys: []string{"name", "description"}}, units[3])
}

func TestCollect_StructuredSkillProducesRootAndReferences(t *testing.T) {
	m := &manifest.Manifest{
		Artifacts: manifest.Artifacts{
			Skills: []manifest.SkillEntry{
				manifest.StructuredSkill("skills/deploy/SKILL.md", []string{
					"skills/deploy/ref-a.md",
					"skills/deploy/ref-b.md",
				}),
			},
		},
	}

	units := Collect(m, DefaultRequirements())
	require.Len(t, units, 3)

	assert.Equal(t, KindSkill, units[0].Kind)
	assert.Equal(t, "skills/deploy/SKILL.md", units[0].Path)
	assert.Equal(t, []string{"name", "description"}, units[0].RequiredKeys)

	assert.Equal(t, KindReference, units[1].Kind)
	assert.Equal(t, "skills/deploy/ref-a.md", units[1].Path)
	assert.Empty(t, units[1].RequiredKeys, "references carry no required keys")

	assert.Equal(t, KindReference, units[2].Kind)
	assert.Equal(t, "skills/deploy/ref-b.md", units[2].Path)
	assert.Empty(t, units[2].RequiredKeys)
}

func TestCollect_StructuredSkillWithoutRoot(t *testing.T) {
	m := &manifest.Manifest{
		Artifacts: manifest.Artifacts{
			Skills: []manifest.SkillEntry{
				manifest.StructuredSkill("", []string{"skills/x/ref.md"}),
			},
		},
	}

	units := Collect(m, DefaultRequirements())
	require.Len(t, units, 1, "no root means no skill unit, references still contribute")
	assert.Equal(t, KindReference, units[0].Kind)
	assert.Equal(t, "skills/x/ref.md", units[0].Path)
}

func TestCollect_ManifestOverridesRequiredKeys(t *testing.T) {
	m := &manifest.Manifest{
		Artifacts: manifest.Artifacts{
			Agents: []string{"agents/ops.md"},
			Skills: []manifest.SkillEntry{manifest.BareSkill("skills/s/SKILL.md")},
		},
		FrontmatterRequirements: manifest.Requirements{
			Agents: &manifest.RequiredKeys{Required: []string{"description", "model"}},
			Skills: &manifest.RequiredKeys{Required: []string{}},
		},
	}

	units := Collect(m, DefaultRequirements())
	require.Len(t, units, 2)
	assert.Equal(t, []string{"description", "model"}, units[0].RequiredKeys)
	assert.Empty(t, units[1].RequiredKeys, "explicit empty list overrides the default")
}

func TestCollect_DefaultsAreParameters(t *testing.T) {
	m := &manifest.Manifest{
		Artifacts: manifest.Artifacts{Agents: []string{"agents/ops.md"}},
	}

	units := Collect(m, Defaults{Agents: []string{"description", "owner"}})
	require.Len(t, units, 1)
	assert.Equal(t, []string{"description", "owner"}, units[0].RequiredKeys)
}

func TestCollect_EmptyManifest(t *testing.T) {
	units := Collect(&manifest.Manifest{}, DefaultRequirements())
	assert.Empty(t, units)
}
