package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LineEndings(t *testing.T) {
	n := New()
	assert.Equal(t, "one\ntwo\nthree", n.Normalize("one\r\ntwo\rthree"))
}

func TestNormalize_TypographicCharacters(t *testing.T) {
	n := New()
	assert.Equal(t, `"quoted" and 'single' - dash - dash`,
		n.Normalize("“quoted” and ‘single’ — dash – dash"))
}

func TestNormalize_PageFurniture(t *testing.T) {
	n := New()

	t.Run("bare page number", func(t *testing.T) {
		out := n.Normalize("Body text here.\n\n42\n\nMore body text.")
		assert.NotContains(t, out, "42")
	})

	t.Run("page keyword", func(t *testing.T) {
		out := n.Normalize("Body text here.\nPage 3\nMore body text.")
		assert.NotContains(t, out, "Page 3")
		assert.Contains(t, out, "Body text here.")
	})

	t.Run("pager pattern", func(t *testing.T) {
		out := n.Normalize("Body text here.\n12 / 40\nMore body text.")
		assert.NotContains(t, out, "12 / 40")
	})

	t.Run("case insensitive page keyword", func(t *testing.T) {
		out := n.Normalize("Body.\nPAGE 9\nMore.")
		assert.NotContains(t, out, "PAGE 9")
	})

	t.Run("header keywords as whole lines", func(t *testing.T) {
		out := n.Normalize("Intro.\nReferences\nOutro.\nABSTRACT\nDone.")
		assert.NotContains(t, out, "References")
		assert.NotContains(t, out, "ABSTRACT")
	})

	t.Run("numbers inside body text survive", func(t *testing.T) {
		in := "The number 3 appears mid-sentence and stays."
		assert.Equal(t, in, n.Normalize(in))
	})

	t.Run("keyword inside body text survives", func(t *testing.T) {
		in := "See the References section for details."
		assert.Equal(t, in, n.Normalize(in))
	})
}

func TestNormalize_KeepPageFurniture(t *testing.T) {
	n := New(WithKeepPageFurniture())
	out := n.Normalize("Body.\nPage 3\nMore.")
	assert.Contains(t, out, "Page 3")
}

func TestNormalize_ExtraHeaderKeywords(t *testing.T) {
	n := New(WithHeaderKeywords([]string{"Confidential Draft"}))
	out := n.Normalize("Body.\nConfidential Draft\nMore.")
	assert.NotContains(t, out, "Confidential Draft")

	// Defaults still apply.
	out = n.Normalize("Body.\nAbstract\nMore.")
	assert.NotContains(t, out, "Abstract")
}

func TestNormalize_BlankLineCollapse(t *testing.T) {
	n := New()
	out := n.Normalize("one\n\n\n\n\ntwo")
	assert.Equal(t, "one\n\ntwo", out)
}

func TestNormalize_KeepBlankLines(t *testing.T) {
	n := New(WithKeepBlankLines())
	out := n.Normalize("one\n\n\n\ntwo")
	assert.Equal(t, "one\n\n\n\ntwo", out)
}

func TestNormalize_HorizontalWhitespace(t *testing.T) {
	n := New()
	assert.Equal(t, "a b c", n.Normalize("a   b\t\tc"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := New()
	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   \n\t  \n"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"“quotes” – and — dashes\r\nPage 3\n\n\n\nbody   text\t here",
		"Chapter\n\n1 / 2\n\nActual  content with 3 numbers.\n\n\n\nEnd.",
		"  leading and trailing  \n\nPage 12\n",
	}

	for _, n := range []*Normalizer{New(), New(WithKeepPageFurniture()), New(WithKeepBlankLines())} {
		for _, in := range inputs {
			once := n.Normalize(in)
			assert.Equal(t, once, n.Normalize(once), "input %q", in)
		}
	}
}

func TestNormalize_FurnitureRemovalLeavesNoDoubleBlanks(t *testing.T) {
	n := New()
	out := n.Normalize("para one\n\nPage 3\n\npara two")
	assert.False(t, strings.Contains(out, "\n\n\n"))
	assert.Contains(t, out, "para one")
	assert.Contains(t, out, "para two")
}
