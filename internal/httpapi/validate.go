package httpapi

import (
	"embed"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"musicsphere/internal/apperr"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var schemaNames = []string{
	"artistSearch",
	"albumSearch",
	"songSearch",
	"userAuth",
	"userNew",
	"userUpdate",
}

// validator holds the compiled request schemas.
type validator struct {
	schemas map[string]*jsonschema.Schema
}

func newValidator() (*validator, error) {
	compiler := jsonschema.NewCompiler()

	for _, name := range schemaNames {
		f, err := schemaFS.Open("schemas/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("open schema %s: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", name, err)
		}
		if err := compiler.AddResource(name+".json", doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	schemas := make(map[string]*jsonschema.Schema, len(schemaNames))
	for _, name := range schemaNames {
		sch, err := compiler.Compile(name + ".json")
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		schemas[name] = sch
	}

	return &validator{schemas: schemas}, nil
}

// validate checks instance against the named schema. A failure becomes a
// BadRequest carrying the list of validation messages.
func (v *validator) validate(name string, instance any) error {
	sch, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}
	if err := sch.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return apperr.BadRequest(validationMessages(ve))
		}
		return apperr.BadRequest(err.Error())
	}
	return nil
}

func validationMessages(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		return []string{ve.Error()}
	}
	var msgs []string
	for _, cause := range ve.Causes {
		msgs = append(msgs, validationMessages(cause)...)
	}
	return msgs
}
