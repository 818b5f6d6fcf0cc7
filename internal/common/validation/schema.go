package validation

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Schemas for the request bodies accepted by the API.
var (
	CandidateRegistration  = mustLoad("candidate.json")
	InternshipRegistration = mustLoad("internship.json")
	MatchRequest           = mustLoad("match_request.json")
	ScoreRequest           = mustLoad("score_request.json")
)

// Schemas for workflow job variables.
var (
	ScoreJob = mustLoad("score_job.json")
	MatchJob = mustLoad("match_job.json")
)

// Schema is a compiled JSON schema.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func mustLoad(file string) *Schema {
	raw, err := schemaFiles.ReadFile("schemas/" + file)
	if err != nil {
		panic(fmt.Sprintf("validation: read schema %s: %v", file, err))
	}
	s, err := Compile(strings.TrimSuffix(file, ".json"), raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Compile parses a JSON schema document.
func Compile(name string, raw []byte) (*Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, schema: schema}, nil
}

func (s *Schema) Name() string {
	return s.name
}

// Validate checks a raw JSON document. The error is non-nil only when the
// document is not valid JSON; schema violations are reported in the result.
func (s *Schema) Validate(document []byte) (*ValidationResult, error) {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("parse %s document: %w", s.name, err)
	}
	return toValidationResult(result), nil
}

// ValidateInput validates an already decoded document.
func (s *Schema) ValidateInput(input map[string]interface{}) (*ValidationResult, error) {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(input))
	if err != nil {
		return nil, fmt.Errorf("validate %s input: %w", s.name, err)
	}
	return toValidationResult(result), nil
}

func toValidationResult(result *gojsonschema.Result) *ValidationResult {
	errors := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errors = append(errors, ValidationError{
			Field:   fieldName(desc),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return &ValidationResult{
		Valid:  result.Valid(),
		Errors: errors,
	}
}

// fieldName reports the offending property. gojsonschema attributes missing
// required properties to the parent object, so the property is taken from
// the error details instead.
func fieldName(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if desc.Type() != "required" {
		return field
	}
	property, ok := desc.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == gojsonschema.STRING_CONTEXT_ROOT || field == "" {
		return property
	}
	return field + "." + property
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// GetErrorsForField returns errors for a specific field
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}
