package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText(MIMETextPlain, []byte("Jane Doe\njane@example.com"))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com", text)
}

func TestExtractText_UnsupportedMIME(t *testing.T) {
	_, err := ExtractText("application/vnd.ms-excel", []byte("data"))

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "application/vnd.ms-excel", unsupported.MIMEType)
	assert.Contains(t, err.Error(), "unsupported document format")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText(MIMEPDF, []byte("not a pdf"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "pdf", extractionErr.Format)
	assert.Error(t, extractionErr.Unwrap())
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText(MIMEDocx, []byte("not a docx"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "docx", extractionErr.Format)
}

func TestExtractFromFilename(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		expectError bool
	}{
		{"Text file", "resume.txt", false},
		{"Uppercase extension", "RESUME.TXT", false},
		{"Markdown file", "resume.md", false},
		{"Spreadsheet rejected", "resume.xlsx", true},
		{"No extension", "resume", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractFromFilename(tt.filename, []byte("content"))
			if tt.expectError {
				var unsupported *UnsupportedFormatError
				assert.ErrorAs(t, err, &unsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "content", text)
		})
	}
}

func TestStripDocxTags(t *testing.T) {
	input := `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p>`

	assert.Equal(t, "Jane Doe\nEngineer\n", stripDocxTags(input))
}
