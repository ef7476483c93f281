package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/kyora-dev/agentos-check/pkg/logger"
)

var loadLog = logger.New("manifest:load")

// ErrNotFound reports that the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// Load reads, decodes, and schema-checks the manifest at the given path.
// JSON is the canonical format; a .yml/.yaml extension switches to YAML.
// Any failure here aborts the run before a single unit is evaluated.
func Load(path string) (*Manifest, error) {
	loadLog.Printf("Loading manifest: %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if isYAMLPath(path) {
		return loadYAML(path, content)
	}
	return loadJSON(path, content)
}

func loadJSON(path string, content []byte) (*Manifest, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("manifest %s is not valid JSON: %w", path, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	loadLog.Printf("Manifest loaded: version=%s, agents=%d, prompts=%d, skills=%d",
		m.Version, len(m.Artifacts.Agents), len(m.Artifacts.Prompts), len(m.Artifacts.Skills))
	return &m, nil
}

func loadYAML(path string, content []byte) (*Manifest, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("manifest %s is not valid YAML: %w", path, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	loadLog.Printf("Manifest loaded: version=%s, agents=%d, prompts=%d, skills=%d",
		m.Version, len(m.Artifacts.Agents), len(m.Artifacts.Prompts), len(m.Artifacts.Skills))
	return &m, nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}
