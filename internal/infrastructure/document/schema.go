package document

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed document.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// getSchema compila el esquema embebido una sola vez.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal esquema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("document.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("registrar esquema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("document.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compilar esquema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateRaw comprueba que raw sea JSON y cumpla la forma del documento.
func validateRaw(raw string) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return fmt.Errorf("JSON inválido: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("documento fuera de esquema: %w", err)
	}
	return nil
}
