package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestExtractEducation_Basic(t *testing.T) {
	doc := testDoc("EDUCATION\nState University\nBachelor of Science in Computer Science\n2015")

	entries := ExtractEducation(doc, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "State University", entries[0].Institution)
	assert.Equal(t, "Bachelor of Science", entries[0].Degree)
	assert.Equal(t, "Computer Science", entries[0].Major)
	assert.Equal(t, "2015", entries[0].GraduationDate)
}

func TestExtractEducation_AbbreviatedDegree(t *testing.T) {
	doc := testDoc("EDUCATION\nRiverside Community College\nB.S. in Accounting")

	entries := ExtractEducation(doc, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "Riverside Community College", entries[0].Institution)
	assert.Equal(t, "B.S.", entries[0].Degree)
	assert.Equal(t, "Accounting", entries[0].Major)
}

func TestExtractEducation_MissingDegreeGetsPlaceholder(t *testing.T) {
	doc := testDoc("EDUCATION\nState University")

	entries := ExtractEducation(doc, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, degreePlaceholder, entries[0].Degree)
}

func TestExtractEducation_DegreeOnlyFallback(t *testing.T) {
	doc := testDoc("EDUCATION\nBachelor of Arts in History, 2018")

	entries := ExtractEducation(doc, nil)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Institution)
	assert.Equal(t, "Bachelor of Arts", entries[0].Degree)
	assert.Equal(t, "History", entries[0].Major)
	assert.Equal(t, "2018", entries[0].GraduationDate)
}

func TestExtractEducation_SkipsEmployers(t *testing.T) {
	experience := []types.WorkExperience{{CompanyName: "Acme Institute", JobTitle: "Engineer"}}
	doc := testDoc("EDUCATION\nAcme Institute\nState University")

	entries := ExtractEducation(doc, experience)

	require.Len(t, entries, 1)
	assert.Equal(t, "State University", entries[0].Institution,
		"employers with institution-like names must not become schools")
}

func TestExtractEducation_Deduplicates(t *testing.T) {
	doc := testDoc("EDUCATION\nState University\nstate university")

	entries := ExtractEducation(doc, nil)

	assert.Len(t, entries, 1)
}

func TestExtractEducation_BlocklistedProse(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Currently attending", "EDUCATION\nCurrently attending community college"},
		{"High school diploma prose", "EDUCATION\nHigh school diploma preferred"},
		{"No education at all", "Jane Doe\njane@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ExtractEducation(testDoc(tt.input), nil)
			assert.Empty(t, entries, "prose must not become an education entry")
		})
	}
}
