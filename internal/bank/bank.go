// Package bank parses, validates, and imports question bank files into
// the store.
package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedFormatMajor is the bank file format major version this build
// understands. Banks with a different major are rejected.
const SupportedFormatMajor = "v1"

// Bank is a parsed question bank file.
type Bank struct {
	Format     string          `json:"format"`
	Categories []CategoryEntry `json:"categories"`
	Questions  []QuestionEntry `json:"questions"`
}

// CategoryEntry declares a category. Parent is empty for top-level
// categories.
type CategoryEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

// QuestionEntry declares a question. ID may be empty; the importer
// assigns one.
type QuestionEntry struct {
	ID          string   `json:"id,omitempty"`
	Category    string   `json:"category"`
	Text        string   `json:"text"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	MockOnly    bool     `json:"mock_only,omitempty"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Parse validates raw bank JSON against the bank schema and the format
// version gate, then unmarshals it.
func Parse(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("bank schema validation failed: %w", err)
	}

	var b Bank
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if err := checkFormat(b.Format); err != nil {
		return nil, err
	}
	return &b, nil
}

// checkFormat enforces the semantic-version gate on the bank format.
func checkFormat(format string) error {
	v := "v" + format
	if !semver.IsValid(v) {
		return fmt.Errorf("bank format %q is not a valid semantic version", format)
	}
	if semver.Major(v) != SupportedFormatMajor {
		return fmt.Errorf("bank format %s is not supported (want %s.x)", format, SupportedFormatMajor)
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema compiler expects a parsed JSON value. Round-trip
		// the map literal to normalize Go types like []any.
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://question-bank.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
