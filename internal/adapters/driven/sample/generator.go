// Package sample generates a small DOCX/plaintext document pair with
// deliberate drift, so the compare pipeline can be tried end to end
// without real inputs.
package sample

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paragraphs shared by both renderings of the sample document.
var baseParagraphs = []string{
	"The cat sat on the mat. It was happy.",
	"A second paragraph follows the first one, describing the weather in mild terms.",
	"Closing remarks thank the reader for their attention.",
}

// extraParagraph appears only in the DOCX rendering, so comparing it
// against the plaintext twin reports exactly one unmatched sentence.
const extraParagraph = "This paragraph was dropped from the corrected copy."

// driftedFirst replaces the first paragraph in the plaintext rendering.
const driftedFirst = "The cat sat on the mat! It was very happy."

// Generate writes sample.docx and sample.txt into dir and returns
// their paths (docx first).
func Generate(dir string) (string, string, error) {
	docxPath := filepath.Join(dir, "sample.docx")
	txtPath := filepath.Join(dir, "sample.txt")

	docxParagraphs := append(append([]string(nil), baseParagraphs...), extraParagraph)
	if err := writeDocx(docxPath, docxParagraphs); err != nil {
		return "", "", err
	}

	txtParagraphs := append([]string{driftedFirst}, baseParagraphs[1:]...)
	if err := os.WriteFile(txtPath, []byte(strings.Join(txtParagraphs, "\n\n")+"\n"), 0644); err != nil {
		return "", "", fmt.Errorf("writing %q: %w", txtPath, err)
	}

	return docxPath, txtPath, nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// writeDocx writes a minimal OOXML package: one run of text per
// paragraph, mirroring what the docx extractor reads back.
func writeDocx(path string, paragraphs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	parts := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         relsXML,
		"word/document.xml":   documentXML(paragraphs),
	}
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		entry, err := w.Create(name)
		if err != nil {
			return fmt.Errorf("adding %q to %q: %w", name, path, err)
		}
		if _, err := entry.Write([]byte(parts[name])); err != nil {
			return fmt.Errorf("writing %q in %q: %w", name, path, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing %q: %w", path, err)
	}
	return nil
}

// documentXML builds word/document.xml with escaped paragraph text.
func documentXML(paragraphs []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		_ = xml.EscapeText(&b, []byte(p)) // strings.Builder never errors
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}
