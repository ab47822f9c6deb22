package docx

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/sample"
	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
)

func TestExtract_SampleDocument(t *testing.T) {
	dir := t.TempDir()
	docxPath, _, err := sample.Generate(dir)
	require.NoError(t, err)

	doc, err := New().Extract(context.Background(), docxPath)
	require.NoError(t, err)

	assert.Equal(t, "docx", doc.Format)
	assert.Contains(t, doc.Text, "The cat sat on the mat. It was happy.")
	// Paragraphs come back blank-line separated.
	assert.Contains(t, doc.Text, "happy.\n\nA second paragraph")
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.docx"))
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestExtract_NotAZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	_, err := New().Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_MissingDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	entry, err := w.Create("word/other.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte("<other/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	_, err = New().Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".docx"}, New().Extensions())
}
