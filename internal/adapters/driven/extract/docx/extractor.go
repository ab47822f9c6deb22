// Package docx extracts text from OOXML word-processing documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles DOCX documents. Paragraphs are joined with blank
// lines so downstream segmentation sees paragraph structure.
type Extractor struct{}

// New creates a DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".docx"}
}

// Extract opens the file as a ZIP archive and pulls paragraph text out
// of word/document.xml.
func (e *Extractor) Extract(_ context.Context, path string) (domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading %q: %w", path, domain.ErrInputNotFound)
	}

	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return domain.Document{}, fmt.Errorf("not a valid docx archive: %w", domain.ErrExtractionFailed)
	}

	text, err := extractDocumentText(reader)
	if err != nil {
		return domain.Document{}, err
	}

	return domain.Document{
		ID:     uuid.New().String(),
		URI:    path,
		Format: "docx",
		Text:   text,
	}, nil
}

// extractDocumentText extracts paragraph text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening document.xml: %w", domain.ErrExtractionFailed)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading document.xml: %w", domain.ErrExtractionFailed)
		}

		return parseDocumentXML(content)
	}
	return "", fmt.Errorf("word/document.xml missing: %w", domain.ErrExtractionFailed)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML, one
// paragraph per blank-line-separated block.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("parsing document.xml: %w", domain.ErrExtractionFailed)
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return result.String(), nil
}
