package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/enhance"
	"github.com/jonathan/resume-parser/internal/extract"
)

const sampleResume = `Jane Doe
jane.doe@example.com
555-123-4567

EXPERIENCE
Software Engineer at Acme Inc - 2019-2022
` + "•" + ` Built internal tools`

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(ParseResultSchema)
	require.NotEmpty(t, path, "schema resolves from the test working directory")

	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}

func TestValidateParseResult_RealPipelineOutput(t *testing.T) {
	result := extract.NewParser(nil).ParseResumeText(sampleResume)
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateAgainstFile(ParseResultSchema, string(payload)))
}

func TestValidateParseResult_DegradedOutputStillValid(t *testing.T) {
	result := extract.NewParser(nil).ParseResumeText("")
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateAgainstFile(ParseResultSchema, string(payload)),
		"structurally complete degraded results satisfy the schema")
}

func TestValidateParseResult_Violations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"Missing required top-level fields", `{"confidence": 0.5}`},
		{"Confidence out of range", `{"personal_info":{},"summary":{"years_experience":0},"experience":[],"education":[],"skills":[],"confidence":1.5,"suggestions":[]}`},
		{"Bad email shape", `{"personal_info":{"email":"not-an-email"},"summary":{"years_experience":0},"experience":[],"education":[],"skills":[],"confidence":0.1,"suggestions":[]}`},
		{"Too many suggestions", `{"personal_info":{},"summary":{"years_experience":0},"experience":[],"education":[],"skills":[],"confidence":0,"suggestions":["a","b","c","d","e","f"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAgainstFile(ParseResultSchema, tt.payload)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateEnhancementResult(t *testing.T) {
	result := enhance.NewEnhancer(nil, nil).Enhance("I helped fix pipes for customers", "plumbing", "entry")
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateAgainstFile(EnhancementResultSchema, string(payload)))
}

func TestValidateAgainstFile_MissingSchema(t *testing.T) {
	err := ValidateAgainstFile("schemas/no_such.schema.json", "{}")

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "not found")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type":"object"}`, "{not json")
	assert.Error(t, err)
}
