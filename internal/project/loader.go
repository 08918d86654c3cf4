package project

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

// descriptionSchema validates raw description documents before decoding, so
// unknown keys and out-of-enum project types fail with a pointer to the
// offending field instead of decoding to a zero value.
var descriptionSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("project-description.json", bytes.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("project-description.json")
}

// Load reads a project description from a YAML file.
func Load(path string) (Description, error) {
	file, err := os.Open(path)
	if err != nil {
		return Description{}, fmt.Errorf("opening project description: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return LoadFromReader(file)
}

// LoadFromReader reads a project description from an io.Reader. Useful for
// testing with in-memory YAML.
func LoadFromReader(r io.Reader) (Description, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Description{}, fmt.Errorf("reading project description: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Description{}, fmt.Errorf("parsing project description: %w", err)
	}

	if err := descriptionSchema.Validate(doc); err != nil {
		return Description{}, fmt.Errorf("invalid project description: %w", err)
	}

	var desc Description
	if err := yaml.UnmarshalWithOptions(raw, &desc, yaml.Strict()); err != nil {
		return Description{}, fmt.Errorf("decoding project description: %w", err)
	}
	return desc, nil
}
