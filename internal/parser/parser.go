package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apidocx/apidocx/internal/config"
	"github.com/apidocx/apidocx/internal/logger"
	"github.com/pb33f/libopenapi"
	v2high "github.com/pb33f/libopenapi/datamodel/high/v2"
	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/utils"
	"go.uber.org/zap"
)

// Package parser flattens Swagger/OpenAPI specifications into ordered
// endpoint records ready for rendering.

// SpecParser parses OpenAPI specifications and extracts endpoint records.
// Paths and operations are walked through libopenapi's ordered maps, so
// record order always matches the declaration order in the source document.
type SpecParser struct {
	records  []EndpointRecord
	adjuster *Adjuster
	strict   bool
}

// NewSpecParser creates a new SpecParser instance
func NewSpecParser(cfg *config.Config, adjuster *Adjuster) *SpecParser {
	return &SpecParser{
		records:  make([]EndpointRecord, 0),
		adjuster: adjuster,
		strict:   cfg.Strict,
	}
}

// Records returns the extracted endpoint records
func (p *SpecParser) Records() []EndpointRecord {
	return p.records
}

// Init parses a Swagger/OpenAPI specification from a file
func (p *SpecParser) Init(specFile string, adjustmentsFile string) error {
	data, err := os.ReadFile(specFile)
	if err != nil {
		return fmt.Errorf("failed to read spec file: %w", err)
	}

	if adjustmentsFile != "" {
		if err := p.adjuster.Load(adjustmentsFile); err != nil {
			return fmt.Errorf("failed to load adjustments file: %w", err)
		}
	}

	return p.parse(data)
}

// ParseReader parses a Swagger/OpenAPI specification from a reader
func (p *SpecParser) ParseReader(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read spec: %w", err)
	}

	return p.parse(data)
}

// parse builds the high-level document model and collects endpoint records.
// Swagger 2.0 and OpenAPI 3.x documents go through their respective models;
// both preserve declaration order.
func (p *SpecParser) parse(data []byte) error {
	document, err := libopenapi.NewDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse OpenAPI spec: %w", err)
	}

	p.records = p.records[:0]

	switch specType := document.GetSpecInfo().SpecType; specType {
	case utils.OpenApi3:
		model, errs := document.BuildV3Model()
		if err := p.checkDiagnostics(errs); err != nil {
			return err
		}
		if model == nil {
			return fmt.Errorf("failed to build OpenAPI 3 model: %w", errors.Join(errs...))
		}
		logger.Info("Parsed OpenAPI 3 spec", zap.String("version", model.Model.Version))
		p.collectV3(&model.Model)
	case utils.OpenApi2:
		model, errs := document.BuildV2Model()
		if err := p.checkDiagnostics(errs); err != nil {
			return err
		}
		if model == nil {
			return fmt.Errorf("failed to build Swagger 2 model: %w", errors.Join(errs...))
		}
		logger.Info("Parsed Swagger 2.0 spec")
		p.collectV2(&model.Model)
	default:
		return fmt.Errorf("unsupported specification type: %q", specType)
	}

	logger.Info("Extracted endpoint records", zap.Int("count", len(p.records)))
	return nil
}

// checkDiagnostics handles model-build diagnostics. In strict mode any
// diagnostic aborts the run; otherwise each one is logged and the
// best-effort model is used.
func (p *SpecParser) checkDiagnostics(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if p.strict {
		return fmt.Errorf("spec produced %d diagnostic(s): %w", len(errs), errors.Join(errs...))
	}
	for _, diag := range errs {
		logger.Warn("Spec diagnostic", zap.Error(diag))
	}
	return nil
}

// collectV3 walks an OpenAPI 3.x document in declaration order
func (p *SpecParser) collectV3(doc *v3high.Document) {
	if doc.Paths == nil {
		return
	}
	for pathPair := doc.Paths.PathItems.First(); pathPair != nil; pathPair = pathPair.Next() {
		path := pathPair.Key()
		for opPair := pathPair.Value().GetOperations().First(); opPair != nil; opPair = opPair.Next() {
			method := strings.ToUpper(opPair.Key())
			if !p.adjuster.Included(path, method) {
				continue
			}
			p.records = append(p.records, p.buildV3Record(path, method, opPair.Value()))
		}
	}
}

func (p *SpecParser) buildV3Record(path, method string, op *v3high.Operation) EndpointRecord {
	params := make([]string, 0, len(op.Parameters))
	for _, param := range op.Parameters {
		if param == nil {
			continue
		}
		params = append(params, formatParameter(param.Name, v3ParamType(param), param.Description))
	}
	if op.RequestBody != nil {
		params = append(params, formatRequestBody(op.RequestBody.Description))
	}

	response := NoResponseInfo
	if op.Responses != nil {
		for codePair := op.Responses.Codes.First(); codePair != nil; codePair = codePair.Next() {
			if codePair.Key() == "200" && codePair.Value() != nil {
				response = "200 OK: " + codePair.Value().Description
				break
			}
		}
	}

	desc := p.adjuster.Description(path, method, fallbackChain("", op.Summary, op.Description))
	return EndpointRecord{
		Method:      method,
		Path:        path,
		Description: fallbackChain(NoDescriptionProvided, desc),
		Parameters:  params,
		Response:    response,
	}
}

// collectV2 walks a Swagger 2.0 document in declaration order
func (p *SpecParser) collectV2(doc *v2high.Swagger) {
	if doc.Paths == nil {
		return
	}
	for pathPair := doc.Paths.PathItems.First(); pathPair != nil; pathPair = pathPair.Next() {
		path := pathPair.Key()
		for opPair := pathPair.Value().GetOperations().First(); opPair != nil; opPair = opPair.Next() {
			method := strings.ToUpper(opPair.Key())
			if !p.adjuster.Included(path, method) {
				continue
			}
			p.records = append(p.records, p.buildV2Record(path, method, opPair.Value()))
		}
	}
}

func (p *SpecParser) buildV2Record(path, method string, op *v2high.Operation) EndpointRecord {
	// Swagger 2.0 models the request body as an "in: body" parameter; it maps
	// to the same synthetic entry as an OpenAPI 3 request body, appended after
	// the declared parameters.
	params := make([]string, 0, len(op.Parameters))
	var bodyDescription string
	var hasBody bool
	for _, param := range op.Parameters {
		if param == nil {
			continue
		}
		if param.In == "body" {
			hasBody = true
			bodyDescription = param.Description
			continue
		}
		params = append(params, formatParameter(param.Name, param.Type, param.Description))
	}
	if hasBody {
		params = append(params, formatRequestBody(bodyDescription))
	}

	response := NoResponseInfo
	if op.Responses != nil {
		for codePair := op.Responses.Codes.First(); codePair != nil; codePair = codePair.Next() {
			if codePair.Key() == "200" && codePair.Value() != nil {
				response = "200 OK: " + codePair.Value().Description
				break
			}
		}
	}

	desc := p.adjuster.Description(path, method, fallbackChain("", op.Summary, op.Description))
	return EndpointRecord{
		Method:      method,
		Path:        path,
		Description: fallbackChain(NoDescriptionProvided, desc),
		Parameters:  params,
		Response:    response,
	}
}

// v3ParamType resolves the declared schema type of a parameter
func v3ParamType(param *v3high.Parameter) string {
	if param.Schema == nil {
		return ""
	}
	schema := param.Schema.Schema()
	if schema == nil || len(schema.Type) == 0 {
		return ""
	}
	return schema.Type[0]
}

func formatParameter(name, paramType, description string) string {
	return fmt.Sprintf("%s (%s): %s",
		name,
		fallbackChain(UnknownType, paramType),
		fallbackChain(NoParamDescription, description))
}

func formatRequestBody(description string) string {
	return "Request Body: " + fallbackChain(NoParamDescription, description)
}

// fallbackChain returns the first non-empty candidate, or fallback when all
// candidates are empty
func fallbackChain(fallback string, candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}
	return fallback
}
