package dataset

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const schemaBase = "https://github.com/katalvlaran/awpgen/schemas/"

// Schemas are the compiled record schemas.
type Schemas struct {
	Scenario *jsonschema.Schema
	Question *jsonschema.Schema
}

// LoadSchemas compiles the embedded record schemas.
func LoadSchemas() (*Schemas, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	c.AssertFormat = true
	compile := func(name string) (*jsonschema.Schema, error) {
		raw, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, err
		}
		if err := c.AddResource(schemaBase+name, bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("dataset: schema %s: %w", name, err)
		}
		s, err := c.Compile(schemaBase + name)
		if err != nil {
			return nil, fmt.Errorf("dataset: schema %s: %w", name, err)
		}

		return s, nil
	}

	s, err := compile("scenario.schema.json")
	if err != nil {
		return nil, err
	}
	q, err := compile("question.schema.json")
	if err != nil {
		return nil, err
	}

	return &Schemas{Scenario: s, Question: q}, nil
}

// check validates one raw JSON record against s. Numbers stay json.Number
// so integer and minimum keywords see the literal text.
func check(s *jsonschema.Schema, raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}

	return s.Validate(doc)
}
