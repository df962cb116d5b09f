// Package extraction converts uploaded resume documents (TXT, PDF, DOCX) to
// raw text. It is the document-extraction collaborator the parsing core
// consumes the output of; the core itself never touches file formats.
package extraction

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by ExtractText.
const (
	MIMETextPlain = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExtractText converts document bytes to raw text based on MIME type.
func ExtractText(mimeType string, data []byte) (string, error) {
	switch mimeType {
	case MIMETextPlain:
		return string(data), nil
	case MIMEPDF:
		return extractPDF(data)
	case MIMEDocx:
		return extractDocx(data)
	default:
		return "", &UnsupportedFormatError{MIMEType: mimeType}
	}
}

// ExtractFromFilename converts document bytes using the filename extension to
// pick the format. Used by the CLI, where no MIME type is available.
func ExtractFromFilename(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text", ".md":
		return string(data), nil
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	default:
		return "", &UnsupportedFormatError{MIMEType: filepath.Ext(filename)}
	}
}

// extractPDF concatenates the plain text of every page.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocx returns the document body content.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return stripDocxTags(content), nil
}

// stripDocxTags removes the WordprocessingML markup GetContent leaves inline,
// keeping paragraph boundaries as newlines.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
