package renderer

import (
	"strings"

	"github.com/apidocx/apidocx/internal/parser"
	"github.com/charmbracelet/lipgloss"
)

// Preview renders the report as styled terminal text using the same palette
// as the document, for a dry run that leaves the output file untouched.
func Preview(records []parser.EndpointRecord) string {
	var b strings.Builder
	for _, l := range buildLines(records) {
		if l.Text == "" {
			b.WriteByte('\n')
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + l.Color))
		if l.Bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(l.Text))
		b.WriteByte('\n')
	}
	return b.String()
}
