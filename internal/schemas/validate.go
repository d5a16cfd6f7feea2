// Package schemas checks tracker documents (job datasets, preference records
// and digests) against JSON Schemas.
package schemas

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrUnreadable is returned when the schema or the document is not JSON.
var ErrUnreadable = errors.New("schema or document is not readable JSON")

// Violation is one rule a document breaks.
type Violation struct {
	Path   string // dotted path, "(root)" for the document itself
	Reason string
}

// MismatchError lists every violation found in one document.
type MismatchError struct {
	Document   string
	Violations []Violation
}

func (e *MismatchError) Error() string {
	lines := make([]string, 0, len(e.Violations)+1)
	lines = append(lines, fmt.Sprintf("%s: validation failed with %d problem(s)", e.Document, len(e.Violations)))
	for _, v := range e.Violations {
		lines = append(lines, fmt.Sprintf("  - %s: %s", v.Path, v.Reason))
	}
	return strings.Join(lines, "\n")
}

// CheckFile validates the JSON file at docPath against the schema at schemaPath.
func CheckFile(schemaPath, docPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}
	doc, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", docPath, err)
	}
	return check(docPath, gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(doc))
}

// CheckString validates doc against schema, both given as JSON text.
func CheckString(schema, doc string) error {
	return check("document", gojsonschema.NewStringLoader(schema), gojsonschema.NewStringLoader(doc))
}

// Check validates raw document bytes against schema.
func Check(schema string, doc []byte) error {
	return check("document", gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(doc))
}

func check(name string, schema, doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schema, doc)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", name, ErrUnreadable, err)
	}
	if result.Valid() {
		return nil
	}

	mismatch := &MismatchError{Document: name}
	for _, re := range result.Errors() {
		path := re.Field()
		if path == "" {
			path = "(root)"
		}
		mismatch.Violations = append(mismatch.Violations, Violation{Path: path, Reason: re.Description()})
	}
	return mismatch
}
