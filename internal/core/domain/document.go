package domain

// Document holds the extracted plain text of one rendering of the
// underlying work. It is the canonical input to the comparison pipeline
// and is immutable after extraction.
type Document struct {
	// ID is the unique identifier assigned at extraction time.
	ID string

	// URI is the original location (file path).
	URI string

	// Format names the container format the text came from
	// (e.g. "pdf", "docx", "text").
	Format string

	// Text is the raw extracted text before normalization.
	// Paragraph structure is preserved via blank-line separation;
	// layout is not.
	Text string
}
