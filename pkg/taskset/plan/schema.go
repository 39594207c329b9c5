package plan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed plan.schema.json
var planSchemaData []byte

var (
	planSchema  *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

func compileSchema() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(planSchemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal plan schema: %w", err)
			return
		}

		if err := compiler.AddResource("plan.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add plan schema resource: %w", err)
			return
		}

		planSchema, err = compiler.Compile("plan.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile plan schema: %w", err)
		}
	})

	return compileErr
}

// validateDocument checks a decoded YAML or TOML document against the plan
// schema. The document is round-tripped through JSON so the validator only
// sees JSON types.
func validateDocument(doc any) error {
	if err := compileSchema(); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return invalidf("", "not representable as JSON: %v", err)
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return invalidf("", "%v", err)
	}

	if err := planSchema.Validate(v); err != nil {
		return invalidf("", "%v", err)
	}
	return nil
}
