package store

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task.schema.json
var taskSchemaJSON []byte

const taskSchemaURL = "taskman://task.schema.json"

// recordSchema compiles the embedded record schema once per process.
var recordSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(taskSchemaURL, bytes.NewReader(taskSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add task schema: %w", err)
	}
	schema, err := compiler.Compile(taskSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}
	return schema, nil
})

// validateRecord checks a decoded JSON value against the task schema and
// flattens any violation into a single error listing each failing field.
func validateRecord(doc any) error {
	schema, err := recordSchema()
	if err != nil {
		return err
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	if len(msgs) == 0 {
		return errors.New(ve.Message)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func collectSchemaErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		loc := strings.TrimPrefix(err.InstanceLocation, "/")
		if loc == "" {
			*msgs = append(*msgs, err.Message)
			return
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, msgs)
	}
}
