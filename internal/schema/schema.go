// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package schema generates and validates the JSON Schema for a decoded
// types.Document, used by the CLI's JSON bundle decode path before a
// Document is constructed from untrusted input. BundleAddDocument in
// pkg/reconforth takes an already-built Document and does not call it.
package schema

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/reconforth/reconforth/internal/types"
)

type schemaState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

var globalSchemaState = &schemaState{}

// Generate produces a JSON Schema document describing types.Document.
func Generate() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&types.Document{})

	s.ID = jsonschema.ID(ID())
	s.Title = "ReconForth Document"
	s.Description = "Schema for a document decoded into a validation bundle"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, oops.In("schema").Hint("failed to marshal schema").Wrap(err)
	}
	data = append(data, '\n')
	return data, nil
}

// Validate validates JSON-encoded document data against the Document schema.
// This runs before json.Unmarshal into types.Document so that a malformed
// payload surfaces a decoding error distinct from the VM's own error kinds.
func Validate(data []byte) error {
	if len(data) == 0 {
		return oops.In("schema").New("document data is empty")
	}

	var jsonData any
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return oops.In("schema").Hint("invalid JSON").Wrap(err)
	}

	sch, err := getCompiledSchema()
	if err != nil {
		return oops.In("schema").Hint("failed to compile schema").Wrap(err)
	}

	if err := sch.Validate(jsonData); err != nil {
		return oops.In("schema").Hint("document failed schema validation").Wrap(err)
	}

	return nil
}

func getCompiledSchema() (*jschema.Schema, error) {
	globalSchemaState.once.Do(func() {
		globalSchemaState.schema, globalSchemaState.err = compileSchema()
	})
	return globalSchemaState.schema, globalSchemaState.err
}

func compileSchema() (*jschema.Schema, error) {
	schemaBytes, err := Generate()
	if err != nil {
		return nil, err
	}

	var schemaData any
	if err := json.Unmarshal(schemaBytes, &schemaData); err != nil {
		return nil, oops.In("schema").Hint("failed to parse schema JSON").Wrap(err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("document.json", schemaData); err != nil {
		return nil, oops.In("schema").Hint("failed to add schema resource").Wrap(err)
	}

	sch, err := c.Compile("document.json")
	if err != nil {
		return nil, oops.In("schema").Hint("failed to compile schema").Wrap(err)
	}

	return sch, nil
}

// ResetCache clears the cached compiled schema. Used by tests.
func ResetCache() {
	globalSchemaState = &schemaState{}
}

// ID returns the schema $id.
func ID() string {
	return "https://reconforth.dev/schemas/document.schema.json"
}
