package jsonfile

import (
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "tasks.schema.json"

// tasksSchema describes the task file: an array of {"task": "..."} objects.
const tasksSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["task"],
    "properties": {
      "task": { "type": "string" }
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, tasksSchema)

// validate checks a decoded document against the task file schema and
// reports the first leaf violation.
func validate(doc interface{}) error {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	leaf := firstLeaf(ve)
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Errorf("%w at %s: %s", ErrInvalidFormat, loc, leaf.Message)
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
