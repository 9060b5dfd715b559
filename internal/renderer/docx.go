package renderer

import (
	"fmt"
	"os"

	"github.com/apidocx/apidocx/internal/logger"
	"github.com/apidocx/apidocx/internal/parser"
	docx "github.com/fumiama/go-docx"
	"go.uber.org/zap"
)

// Package renderer turns endpoint records into a styled Word document,
// one section per endpoint after a fixed title and introduction.

// Renderer writes an endpoint report to a file
type Renderer interface {
	// Render writes the report for the given records to outputPath,
	// overwriting any existing file
	Render(records []parser.EndpointRecord, outputPath string) error
}

// DocxRenderer emits the report as a .docx flow document
type DocxRenderer struct{}

// NewDocxRenderer creates a new DocxRenderer instance
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Render builds the styled paragraph sequence and writes it as a Word
// document. The file handle is closed on every exit path.
func (r *DocxRenderer) Render(records []parser.EndpointRecord, outputPath string) (err error) {
	doc := docx.New().WithDefaultTheme()

	for _, l := range buildLines(records) {
		para := doc.AddParagraph()
		if l.Text == "" {
			continue // spacer paragraph carries no run
		}
		run := para.AddText(l.Text)
		if l.Color != "" {
			run.Color(l.Color)
		}
		if l.Size != "" {
			run.Size(l.Size)
		}
		if l.Bold {
			run.Bold()
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err = doc.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	logger.Info("Wrote document",
		zap.String("path", outputPath),
		zap.Int("endpoints", len(records)))
	return nil
}
