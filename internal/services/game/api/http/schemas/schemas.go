// Package schemas validates JSON request bodies of the game HTTP API.
package schemas

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Name identifies an embedded schema.
type Name string

const (
	Login      Name = "login.schema.json"
	CreateGame Name = "create_game.schema.json"
	Move       Name = "move.schema.json"
)

//go:embed *.schema.json
var files embed.FS

const baseURL = "mem://lastwalk/schemas/"

var compiled = sync.OnceValues(compileAll)

func compileAll() (map[Name]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	names := []Name{Login, CreateGame, Move}
	for _, name := range names {
		raw, err := files.ReadFile(string(name))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		if err := compiler.AddResource(baseURL+string(name), bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	out := make(map[Name]*jsonschema.Schema, len(names))
	for _, name := range names {
		schema, err := compiler.Compile(baseURL + string(name))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		out[name] = schema
	}
	return out, nil
}

// Load compiles every embedded schema, reporting the first failure.
func Load() error {
	_, err := compiled()
	return err
}

// Validate checks raw JSON against the named schema.
func Validate(name Name, raw []byte) error {
	all, err := compiled()
	if err != nil {
		return err
	}
	schema, ok := all[name]
	if !ok {
		return fmt.Errorf("unknown schema %s", name)
	}

	var doc any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return schema.Validate(doc)
}
