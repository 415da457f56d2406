package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchema is the JSON Schema the embedded question bank must
// satisfy before the catalog will load it.
const questionSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "axis", "text", "options", "priority"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "axis": {"enum": ["EI", "SN", "TF", "JP"]},
          "text": {"type": "string", "minLength": 1},
          "priority": {"enum": [1, 2, 3]},
          "reverse_coded": {"type": "boolean"},
          "options": {
            "type": "array",
            "minItems": 5,
            "maxItems": 5,
            "items": {
              "type": "object",
              "required": ["label", "value"],
              "properties": {
                "label": {"type": "string", "minLength": 1},
                "value": {"type": "integer", "minimum": 1, "maximum": 5}
              }
            }
          }
        }
      }
    }
  }
}`

// validateQuestionData validates raw question JSON against questionSchema.
func validateQuestionData(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	var schemaDoc any
	if err := json.Unmarshal([]byte(questionSchema), &schemaDoc); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://questions.json", schemaDoc); err != nil {
		return fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://questions.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
