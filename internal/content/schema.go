package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/*.json
var schemaFiles embed.FS

type documentSchema interface {
	Validate(v interface{}) error
}

type schemaSet struct {
	base    documentSchema
	overlay documentSchema
}

func compileSchemas() (schemaSet, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	for _, name := range []string{"base.schema.json", "overlay.schema.json"} {
		raw, err := schemaFiles.ReadFile("schema/" + name)
		if err != nil {
			return schemaSet{}, fmt.Errorf("content: read schema %s: %w", name, err)
		}
		if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
			return schemaSet{}, fmt.Errorf("content: add schema %s: %w", name, err)
		}
	}

	base, err := compiler.Compile("base.schema.json")
	if err != nil {
		return schemaSet{}, fmt.Errorf("content: compile base schema: %w", err)
	}
	overlay, err := compiler.Compile("overlay.schema.json")
	if err != nil {
		return schemaSet{}, fmt.Errorf("content: compile overlay schema: %w", err)
	}
	return schemaSet{base: schemaValidator{base}, overlay: schemaValidator{overlay}}, nil
}

// schemaValidator flattens jsonschema's nested causes into one message.
type schemaValidator struct{ s *jsonschema.Schema }

func (v schemaValidator) Validate(doc interface{}) error {
	err := v.s.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	var messages []string
	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "(root)"
			}
			messages = append(messages, loc+": "+e.Message)
		}
		for _, c := range e.Causes {
			collect(c)
		}
	}
	collect(verr)
	return errors.New(strings.Join(messages, "; "))
}
