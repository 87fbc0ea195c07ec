package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// schemaResourceURL is the synthetic URL the in-memory schema document is
// compiled under.
const schemaResourceURL = "schema.json"

// SchemaValidator validates decoded JSON payloads against a schema
// compiled once at construction (draft-07).
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the given schema document.
// The document must be a JSON-compatible tree (maps, slices, primitives).
func NewSchemaValidator(schema map[string]any) (*SchemaValidator, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaResourceURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	compiled, err := compiler.Compile(schemaResourceURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &SchemaValidator{schema: compiled}, nil
}

// NewSchemaValidatorFromStore loads the schema stored under (pkg, name)
// and compiles it. Behaviour is otherwise identical to NewSchemaValidator;
// the store exists so schema retrieval can be substituted in tests.
func NewSchemaValidatorFromStore(store driven.SchemaStore, pkg, name string) (*SchemaValidator, error) {
	doc, err := store.Load(pkg, name)
	if err != nil {
		return nil, fmt.Errorf("load schema %s/%s: %w", pkg, name, err)
	}
	return NewSchemaValidator(doc)
}

// Validate runs the payload through the compiled schema and collects
// every violation, not just the first. The payload must be decoded JSON
// (maps, slices, primitives).
//
// Violations are sorted by instance path for deterministic output. Each
// reads as a path expression ("$" root, ".field" keys, "[i]" indices)
// followed by the failure message; branch failures of composite keywords
// (anyOf, oneOf) are indented beneath a Details heading.
func (v *SchemaValidator) Validate(payload any) domain.ValidationResult {
	err := v.schema.Validate(payload)
	if err == nil {
		return domain.ValidResult()
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return domain.InvalidResult([]string{"$: " + err.Error()})
	}

	var violations []schemaViolation
	collectViolations(validationErr, &violations)
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].path < violations[j].path
	})

	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, violation.render())
	}
	return domain.InvalidResult(messages)
}

// schemaViolation is one reportable failure with optional branch details.
type schemaViolation struct {
	path    string
	message string
	details []string
}

func (v schemaViolation) render() string {
	msg := v.path + ": " + v.message
	if len(v.details) > 0 {
		lines := make([]string, len(v.details))
		for i, detail := range v.details {
			lines[i] = "- " + detail
		}
		msg += "\n    Details:\n    " + strings.Join(lines, "\n    ")
	}
	return msg
}

// collectViolations flattens the error tree into reportable violations.
// Wrapper nodes ("doesn't validate with", "validation failed") are
// descended through; composite keywords become a single violation with
// their branch failures as details; everything else reports as a leaf.
func collectViolations(err *jsonschema.ValidationError, out *[]schemaViolation) {
	if isCompositeKeyword(err.KeywordLocation) {
		violation := schemaViolation{
			path:    pointerToPath(err.InstanceLocation),
			message: err.Message,
		}
		for _, cause := range err.Causes {
			violation.details = append(violation.details, leafMessages(cause)...)
		}
		*out = append(*out, violation)
		return
	}

	if len(err.Causes) == 0 {
		*out = append(*out, schemaViolation{
			path:    pointerToPath(err.InstanceLocation),
			message: err.Message,
		})
		return
	}

	for _, cause := range err.Causes {
		collectViolations(cause, out)
	}
}

// leafMessages returns the messages at the leaves of an error subtree.
func leafMessages(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		return []string{err.Message}
	}
	var messages []string
	for _, cause := range err.Causes {
		messages = append(messages, leafMessages(cause)...)
	}
	return messages
}

// isCompositeKeyword reports whether a keyword location names a composite
// applicator whose branch failures should be grouped rather than flattened.
func isCompositeKeyword(keywordLocation string) bool {
	return strings.HasSuffix(keywordLocation, "/anyOf") ||
		strings.HasSuffix(keywordLocation, "/oneOf")
}

// pointerToPath converts a JSON pointer into the "$.field[i]" expression
// used in violation messages. All-digit segments render as array indices.
func pointerToPath(pointer string) string {
	if pointer == "" {
		return "$"
	}

	var b strings.Builder
	b.WriteString("$")
	for _, segment := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		if isAllDigits(segment) {
			b.WriteString("[" + segment + "]")
		} else {
			b.WriteString("." + segment)
		}
	}
	return b.String()
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
