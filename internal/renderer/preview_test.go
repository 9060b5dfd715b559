package renderer

import (
	"strings"
	"testing"

	"github.com/apidocx/apidocx/internal/parser"
	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	records := []parser.EndpointRecord{
		{
			Method:      "GET",
			Path:        "/users",
			Description: "List users",
			Response:    "200 OK: OK",
		},
	}

	out := Preview(records)

	// Styling may be stripped in non-TTY environments, so assert on the
	// text content and line order only.
	assert.Contains(t, out, documentTitle)
	assert.Contains(t, out, "GET /users")
	assert.Contains(t, out, "Description: List users")
	assert.Contains(t, out, "  - None")
	assert.Contains(t, out, "Response: 200 OK: OK")

	assert.Less(t,
		strings.Index(out, "GET /users"),
		strings.Index(out, "Response: 200 OK: OK"))
}

func TestPreview_Empty(t *testing.T) {
	out := Preview(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
}
