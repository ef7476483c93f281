package manifest

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/kyora-dev/agentos-check/pkg/logger"
)

var schemaLog = logger.New("manifest:schema")

//go:embed schemas/manifest.schema.json
var manifestSchemaJSON string

var (
	compileOnce    sync.Once
	manifestSchema *jsonschema.Schema
	compileErr     error
)

// compiledSchema compiles the embedded manifest schema exactly once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(manifestSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("failed to parse embedded manifest schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("failed to add manifest schema resource: %w", err)
			return
		}

		manifestSchema, compileErr = compiler.Compile("manifest.schema.json")
	})
	return manifestSchema, compileErr
}

// validateDocument checks a decoded manifest document against the embedded
// schema. Shape errors here are fatal to the run: one clear error up front
// beats a confusing cascade of per-unit failures.
func validateDocument(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		schemaLog.Printf("Manifest schema validation failed: %v", err)
		return fmt.Errorf("manifest does not match the expected shape: %w", err)
	}

	schemaLog.Print("Manifest schema validation passed")
	return nil
}
