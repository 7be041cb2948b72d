// Package bank reads and writes the JSON interchange format for problem
// catalogs, used by the export and import commands to move a question bank
// between machines or out of the sqlite store entirely.
package bank

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathdrill/internal/problem"
)

// Document is the top-level interchange structure.
type Document struct {
	Problems []Entry `json:"problems"`
}

// Entry is one problem in interchange form. Times travel as whole seconds,
// matching the resolution the score formula consumes.
type Entry struct {
	Operands       [2]uint8 `json:"operands"`
	Operator       string   `json:"operator"`
	NumWrong       int      `json:"num_wrong"`
	LatestTimeSecs int64    `json:"latest_time_secs"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled bank schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(BankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Export writes the catalog to w as an indented interchange document.
func Export(w io.Writer, catalog problem.Catalog) error {
	doc := Document{Problems: make([]Entry, 0, len(catalog))}
	for _, p := range catalog {
		doc.Problems = append(doc.Problems, Entry{
			Operands:       p.Operands(),
			Operator:       p.Op().Symbol(),
			NumWrong:       p.NumWrong(),
			LatestTimeSecs: int64(p.LatestTime() / time.Second),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode question bank: %w", err)
	}
	return nil
}

// Import reads an interchange document from r, validates it against the
// bank schema, and rebuilds the catalog in document order. Any entry that
// fails problem construction (e.g. a subtraction underflow the schema
// cannot express) fails the whole import.
func Import(r io.Reader) (problem.Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	catalog := make(problem.Catalog, 0, len(doc.Problems))
	for i, e := range doc.Problems {
		p, err := problem.New(
			e.Operands[0],
			e.Operands[1],
			problem.Op(e.Operator),
			e.NumWrong,
			time.Duration(e.LatestTimeSecs)*time.Second,
		)
		if err != nil {
			return nil, fmt.Errorf("problem %d: %w", i, err)
		}
		catalog = append(catalog, p)
	}
	return catalog, nil
}
