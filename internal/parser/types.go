package parser

import "io"

// EndpointRecord is the flattened, render-ready view of one documented
// operation. Every field is populated during extraction; absent source data
// is replaced by a fixed fallback string, never left empty.
type EndpointRecord struct {
	Method      string
	Path        string
	Description string
	Parameters  []string
	Response    string
}

// Parser handles parsing of Swagger/OpenAPI specifications
type Parser interface {
	// Init parses a Swagger/OpenAPI specification from a file
	Init(specFile string, adjustmentsFile string) error
	// ParseReader parses a Swagger/OpenAPI specification from a reader
	ParseReader(reader io.Reader) error
	// Records returns the extracted endpoint records in declaration order
	Records() []EndpointRecord
}

// Fixed fallback strings used when the source document omits a field.
const (
	NoDescriptionProvided = "No description provided"
	NoParamDescription    = "No description"
	NoResponseInfo        = "No response info"
	UnknownType           = "unknown"
)
