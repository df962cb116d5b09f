// Package schemas provides JSON Schema validation for the serialized result
// types callers transport and persist.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Relative schema paths from the repository root.
const (
	ParseResultSchema       = "schemas/parse_result.schema.json"
	EnhancementResultSchema = "schemas/enhancement_result.schema.json"
)

// ResolveSchemaPath finds a schema file by trying common path resolutions:
// relative to the working directory, then one and two levels up. Useful when
// commands and tests run from different directories. Returns empty when no
// candidate exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError indicates the schema itself could not be loaded or parsed.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSONString validates JSON document content against schema content.
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// ValidateAgainstFile validates JSON content against a schema file resolved
// from the repository root.
func ValidateAgainstFile(schemaRelPath, jsonContent string) error {
	schemaPath := ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return &SchemaLoadError{Path: schemaRelPath, Message: "schema file not found"}
	}
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "failed to read schema", Cause: err}
	}
	return ValidateJSONString(string(schemaBytes), jsonContent)
}
