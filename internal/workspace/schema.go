package workspace

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/jsonc"
)

// descriptorSchema validates the minimal descriptor shape this tool relies
// on. Descriptors carry plenty of other fields (architect targets, cli
// defaults) that are none of our business.
const descriptorSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["projects"],
  "properties": {
    "projects": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["root"],
        "properties": {
          "root": { "type": "string" },
          "prefix": { "type": "string" }
        }
      }
    }
  }
}`

var compiledDescriptorSchema = mustCompileDescriptorSchema()

func mustCompileDescriptorSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(descriptorSchema))
	if err != nil {
		panic(err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("descriptor.schema.json", doc); err != nil {
		panic(err)
	}

	schema, err := compiler.Compile("descriptor.schema.json")
	if err != nil {
		panic(err)
	}

	return schema
}

// validateDescriptor checks raw descriptor bytes (comments tolerated)
// against the schema.
func validateDescriptor(data []byte) error {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonc.ToJSON(data)))
	if err != nil {
		return err
	}

	if err := compiledDescriptorSchema.Validate(value); err != nil {
		return fmt.Errorf("invalid workspace descriptor: %w", err)
	}

	return nil
}
