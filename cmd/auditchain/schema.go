package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// bundleSchema pins the exported bundle's wire shape: two parallel arrays
// whose fixed-width text fields and hex hash fields are checked up front.
// The id and timestamp checks are ASCII patterns rather than length bounds:
// JSON Schema lengths count code points, but the chain record's 36/24 field
// widths are UTF-8 bytes, and the patterns make those coincide.
const bundleSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["events", "entries"],
  "properties": {
    "events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "seq", "type", "timestamp", "payload"],
        "properties": {
          "id": {"type": "string", "pattern": "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"},
          "seq": {"type": "integer", "minimum": 0},
          "type": {"type": "string"},
          "timestamp": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}\\.\\d{3}Z$"}
        }
      }
    },
    "entries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["seq", "eventId", "eventType", "timestamp", "contentHash", "previousHash", "chainHash"],
        "properties": {
          "seq": {"type": "integer", "minimum": 0},
          "eventId": {"type": "string", "pattern": "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"},
          "eventType": {"type": "string"},
          "timestamp": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}\\.\\d{3}Z$"},
          "contentHash": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
          "previousHash": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
          "chainHash": {"type": "string", "pattern": "^[0-9a-f]{64}$"}
        }
      }
    }
  }
}`

var compiledBundleSchema = mustCompileBundleSchema()

func mustCompileBundleSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	const url = "https://auditchain.schemas.local/bundle.schema.json"
	if err := c.AddResource(url, strings.NewReader(bundleSchema)); err != nil {
		panic(fmt.Sprintf("bundle schema load failed: %v", err))
	}
	schema, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("bundle schema compile failed: %v", err))
	}
	return schema
}

// validateBundleShape checks raw export JSON against the bundle schema.
func validateBundleShape(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := compiledBundleSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
