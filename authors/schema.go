package authors

import (
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// registrySchema constrains the static author file: an array of author
// objects keyed by unique slugs. Validation runs before decoding so a
// malformed registry fails loudly instead of producing half-filled records.
const registrySchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["slug", "name", "bio", "description"],
		"properties": {
			"slug": {"type": "string", "minLength": 1},
			"name": {"type": "string", "minLength": 1},
			"bio": {"type": "string"},
			"description": {"type": "string"},
			"avatar": {"type": "string"},
			"social": {
				"type": "object",
				"additionalProperties": {"type": "string"}
			}
		},
		"additionalProperties": false
	}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("authors.json", strings.NewReader(registrySchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile("authors.json")
	})
	return schema, schemaErr
}
