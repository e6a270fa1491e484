package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, parts map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("guide.pdf"))
	assert.True(t, Supported("Guide.DOCX"))
	assert.True(t, Supported("slides.pptx"))
	assert.True(t, Supported("notes.txt"))
	assert.True(t, Supported("README.md"))
	assert.False(t, Supported("image.png"))
	assert.False(t, Supported("noext"))
}

func TestTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rule one.\nRule two."), 0o644))

	text, err := Text(path)
	require.NoError(t, err)
	assert.Equal(t, "Rule one.\nRule two.", text)
}

func TestTextUnsupported(t *testing.T) {
	_, err := Text("diagram.svg")
	assert.Error(t, err)
}

func TestDocxText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.docx")
	writeZip(t, path, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml": `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Use snake_case for variables.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Never hardcode </w:t></w:r><w:r><w:t>passwords.</w:t></w:r></w:p>
  </w:body>
</w:document>`,
	})

	text, err := Text(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Use snake_case for variables.")
	assert.Contains(t, text, "Never hardcode passwords.")
}

func TestDocxMissingPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	writeZip(t, path, map[string]string{"other.xml": "<x/>"})

	_, err := Text(path)
	assert.Error(t, err)
}

func TestPptxText(t *testing.T) {
	slide := func(text string) string {
		return `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody>
    <a:p><a:r><a:t>` + text + `</a:t></a:r></a:p>
  </p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`
	}

	path := filepath.Join(t.TempDir(), "deck.pptx")
	writeZip(t, path, map[string]string{
		"ppt/slides/slide2.xml":  slide("Second slide rule."),
		"ppt/slides/slide1.xml":  slide("First slide rule."),
		"ppt/media/ignored.xml":  "<x/>",
		"ppt/slideMasters/m.xml": "<x/>",
	})

	text, err := Text(path)
	require.NoError(t, err)
	// Slides come back in order.
	first := "First slide rule.\nSecond slide rule."
	assert.Equal(t, first, text)
}

func TestTextMissingFile(t *testing.T) {
	_, err := Text(filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}
