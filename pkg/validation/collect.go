package validation

import (
	"github.com/kyora-dev/agentos-check/pkg/logger"
	"github.com/kyora-dev/agentos-check/pkg/manifest"
)

var collectLog = logger.New("validation:collect")

// Collect flattens the manifest's artifact declarations into the ordered
// unit list: agents, then prompts, then skills, each in declaration order.
// A structured skill entry contributes its root (when present) followed by
// one reference unit per listed reference.
func Collect(m *manifest.Manifest, defaults Defaults) []Unit {
	var units []Unit

	agentKeys := requiredOrDefault(m.FrontmatterRequirements.Agents, defaults.Agents)
	for _, path := range m.Artifacts.Agents {
		units = append(units, Unit{Path: path, Kind: KindAgent, RequiredKeys: agentKeys})
	}

	promptKeys := requiredOrDefault(m.FrontmatterRequirements.Prompts, defaults.Prompts)
	for _, path := range m.Artifacts.Prompts {
		units = append(units, Unit{Path: path, Kind: KindPrompt, RequiredKeys: promptKeys})
	}

	skillKeys := requiredOrDefault(m.FrontmatterRequirements.Skills, defaults.Skills)
	for _, entry := range m.Artifacts.Skills {
		if path, bare := entry.Bare(); bare {
			units = append(units, Unit{Path: path, Kind: KindSkill, RequiredKeys: skillKeys})
			continue
		}

		root, references, _ := entry.Structured()
		if root != "" {
			units = append(units, Unit{Path: root, Kind: KindSkill, RequiredKeys: skillKeys})
		}
		for _, ref := range references {
			units = append(units, Unit{Path: ref, Kind: KindReference, RequiredKeys: []string{}})
		}
	}

	collectLog.Printf("Collected %d validation units", len(units))
	return units
}

// requiredOrDefault returns the manifest's required-key list for a kind, or
// the fallback when the manifest omits it. An explicit empty list is a real
// override meaning "no required keys".
func requiredOrDefault(keys *manifest.RequiredKeys, fallback []string) []string {
	if keys == nil || keys.Required == nil {
		return fallback
	}
	return keys.Required
}
