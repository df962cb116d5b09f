package types

// SectionBlock is one labeled contiguous block of resume text.
// StartLine and EndLine are zero-based indexes into the normalized text.
type SectionBlock struct {
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Content   string `json:"content"`
}

// ParsedDocument carries the intermediate state of one parse call: the raw
// input, its normalized form, and the section map produced by segmentation.
// It is created per parse call and discarded after extraction.
type ParsedDocument struct {
	RawText    string
	Normalized string
	Sections   map[string]SectionBlock
}

// Section returns the content of the named section, or the full normalized
// text when the section was not found. Every field extractor uses this
// fallback so an unsegmented resume still gets scanned.
func (d *ParsedDocument) Section(name string) string {
	if block, ok := d.Sections[name]; ok {
		return block.Content
	}
	return d.Normalized
}

// HasSection reports whether segmentation found the named section.
func (d *ParsedDocument) HasSection(name string) bool {
	_, ok := d.Sections[name]
	return ok
}
