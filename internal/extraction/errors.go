package extraction

import "fmt"

// UnsupportedFormatError indicates a document type the extractor cannot read.
type UnsupportedFormatError struct {
	MIMEType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.MIMEType)
}

// ExtractionError wraps a failure from an underlying format reader.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
