package renderer

import (
	"testing"

	"github.com/apidocx/apidocx/internal/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMethodColor(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"GET", "2E8B57"},
		{"POST", colorAccent},
		{"PUT", "ED7D31"},
		{"DELETE", "C00000"},
		{"PATCH", colorNeutral},
		{"OPTIONS", colorNeutral},
		{"HEAD", colorNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, methodColor(tt.method))
		})
	}

	// All unknown methods share the same neutral color
	assert.Equal(t, methodColor("PATCH"), methodColor("OPTIONS"))
}

func TestBuildLines_Empty(t *testing.T) {
	lines := buildLines(nil)

	want := []line{
		{Text: documentTitle, Color: colorAccent, Size: sizeTitle, Bold: true},
		{Text: documentIntro, Color: colorMuted},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLines_SingleEndpoint(t *testing.T) {
	records := []parser.EndpointRecord{
		{
			Method:      "GET",
			Path:        "/users",
			Description: "List users",
			Parameters:  nil,
			Response:    "200 OK: OK",
		},
	}

	want := []line{
		{Text: "API Documentation", Color: colorAccent, Size: sizeTitle, Bold: true},
		{Text: documentIntro, Color: colorMuted},
		{Text: "GET /users", Color: "2E8B57", Size: sizeHeading, Bold: true},
		{Text: "Description: List users", Color: colorText},
		{Text: "Parameters:", Color: colorAccent, Bold: true},
		{Text: "  - None", Color: colorText},
		{Text: "Response: 200 OK: OK", Color: colorResponse},
		{},
	}

	if diff := cmp.Diff(want, buildLines(records)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLines_Parameters(t *testing.T) {
	records := []parser.EndpointRecord{
		{
			Method:      "POST",
			Path:        "/users",
			Description: "Create user",
			Parameters: []string{
				"id (integer): No description",
				"Request Body: User payload",
			},
			Response: parser.NoResponseInfo,
		},
	}

	lines := buildLines(records)
	assert.Equal(t, "  - id (integer): No description", lines[5].Text)
	assert.Equal(t, "  - Request Body: User payload", lines[6].Text)
	assert.Equal(t, colorText, lines[5].Color)

	// POST heading shares the title accent
	assert.Equal(t, colorAccent, lines[2].Color)
}

func TestBuildLines_SectionsFollowRecordOrder(t *testing.T) {
	records := []parser.EndpointRecord{
		{Method: "DELETE", Path: "/b", Description: "d", Response: parser.NoResponseInfo},
		{Method: "GET", Path: "/a", Description: "d", Response: parser.NoResponseInfo},
	}

	lines := buildLines(records)

	var headings []string
	for _, l := range lines {
		if l.Size == sizeHeading {
			headings = append(headings, l.Text)
		}
	}
	assert.Equal(t, []string{"DELETE /b", "GET /a"}, headings)
}
