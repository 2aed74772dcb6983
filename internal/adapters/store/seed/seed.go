// Package seed loads the sample todos that a reset restores. The fixture is
// embedded in the binary and checked against an embedded JSON Schema before
// every entry is validated as a todo.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/go-todo-list/internal/domain"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

const schemaURL = "seed.schema.json"

var (
	//go:embed schema.json
	schemaJSON []byte

	//go:embed todos.json
	todosJSON []byte
)

var _ ports.SeedSource = (*Fixture)(nil)

// Fixture is a ports.SeedSource backed by a JSON document.
type Fixture struct {
	data     []byte
	disabled bool
}

// New returns the embedded fixture. When enabled is false Todos returns an
// empty list, so a reset leaves the collection empty.
func New(enabled bool) *Fixture {
	return &Fixture{data: todosJSON, disabled: !enabled}
}

// FromBytes returns a fixture over data instead of the embedded document.
func FromBytes(data []byte) *Fixture {
	return &Fixture{data: data}
}

// Todos parses and validates the fixture.
func (f *Fixture) Todos() ([]todo.Todo, error) {
	if f.disabled {
		return []todo.Todo{}, nil
	}
	return Parse(f.data)
}

type entry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	Completed   bool   `json:"completed"`
}

// Parse validates data against the fixture schema and converts each entry
// into a normalized, validated todo.
func Parse(data []byte) ([]todo.Todo, error) {
	schema, err := seedSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding seed fixture: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("seed fixture: %w", schemaError(err))
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding seed fixture: %w", err)
	}

	todos := make([]todo.Todo, 0, len(entries))
	for i, e := range entries {
		td := todo.Todo{
			Title:       e.Title,
			Description: e.Description,
			Day:         e.Day,
			Month:       e.Month,
			Year:        e.Year,
			Completed:   e.Completed,
		}
		td.Normalize()
		if err := td.Validate(); err != nil {
			return nil, fmt.Errorf("seed todo %d: %w", i, err)
		}
		todos = append(todos, td)
	}
	return todos, nil
}

// seedSchema compiles the embedded schema on first use.
var seedSchema = sync.OnceValues(compileSchema)

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add seed schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	return schema, nil
}

// schemaError flattens the leaf causes of a schema failure into a
// domain.ValidationError keyed by JSON pointer.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string)
	collectCauses(ve, fields)
	if len(fields) == 0 {
		fields[ve.InstanceLocation] = ve.Message
	}
	return &domain.ValidationError{Fields: fields}
}

func collectCauses(ve *jsonschema.ValidationError, fields map[string]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		fields[loc] = ve.Message
		return
	}
	for _, cause := range ve.Causes {
		collectCauses(cause, fields)
	}
}
