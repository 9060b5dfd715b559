package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apidocx/apidocx/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []parser.EndpointRecord{
	{
		Method:      "GET",
		Path:        "/users",
		Description: "List users",
		Response:    "200 OK: OK",
	},
	{
		Method:      "POST",
		Path:        "/users",
		Description: "Create user",
		Parameters:  []string{"Request Body: User payload"},
		Response:    parser.NoResponseInfo,
	},
}

func TestDocxRenderer_Render(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "ApiDocumentation.docx")

	r := NewDocxRenderer()
	err := r.Render(sampleRecords, outputPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// A .docx file is a ZIP container
	assert.Equal(t, []byte{'P', 'K', 0x03, 0x04}, data[:4])
}

func TestDocxRenderer_EmptyRecords(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.docx")

	r := NewDocxRenderer()
	err := r.Render(nil, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDocxRenderer_Overwrite(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "ApiDocumentation.docx")
	r := NewDocxRenderer()

	require.NoError(t, r.Render(sampleRecords, outputPath))
	first, err := os.Stat(outputPath)
	require.NoError(t, err)

	require.NoError(t, r.Render(sampleRecords, outputPath))
	second, err := os.Stat(outputPath)
	require.NoError(t, err)

	// Same input produces the same document; the rewrite truncates the old one
	assert.Equal(t, first.Size(), second.Size())
}

func TestDocxRenderer_MissingDirectory(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "missing", "ApiDocumentation.docx")

	r := NewDocxRenderer()
	err := r.Render(sampleRecords, outputPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
