package renderer

import (
	"fmt"

	"github.com/apidocx/apidocx/internal/parser"
)

const (
	documentTitle = "API Documentation"
	documentIntro = "This document provides an overview of all available API endpoints."
)

// Font sizes in half-points, the unit DOCX run properties use.
const (
	sizeTitle   = "32"
	sizeHeading = "28"
)

// line is one styled paragraph of the report. An empty Text is a spacer
// paragraph.
type line struct {
	Text  string
	Color string
	Size  string
	Bold  bool
}

// buildLines projects endpoint records onto the flat, styled paragraph
// sequence of the report. Pure; the DOCX and terminal emitters both
// consume its output.
func buildLines(records []parser.EndpointRecord) []line {
	lines := []line{
		{Text: documentTitle, Color: colorAccent, Size: sizeTitle, Bold: true},
		{Text: documentIntro, Color: colorMuted},
	}

	for _, record := range records {
		lines = append(lines,
			line{Text: fmt.Sprintf("%s %s", record.Method, record.Path), Color: methodColor(record.Method), Size: sizeHeading, Bold: true},
			line{Text: "Description: " + record.Description, Color: colorText},
			line{Text: "Parameters:", Color: colorAccent, Bold: true},
		)

		if len(record.Parameters) == 0 {
			lines = append(lines, line{Text: "  - None", Color: colorText})
		} else {
			for _, param := range record.Parameters {
				lines = append(lines, line{Text: "  - " + param, Color: colorText})
			}
		}

		lines = append(lines,
			line{Text: "Response: " + record.Response, Color: colorResponse},
			line{}, // spacer between sections
		)
	}

	return lines
}
