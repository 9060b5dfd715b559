package parser

import (
	"os"

	"github.com/apidocx/apidocx/internal/logger"
	"github.com/apidocx/apidocx/internal/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Adjuster provides endpoint filtering and description overrides based on an
// optional YAML adjustments file
type Adjuster struct {
	adjustments *models.DocAdjustments
}

// NewAdjuster creates a new Adjuster instance
func NewAdjuster() *Adjuster {
	return &Adjuster{
		adjustments: &models.DocAdjustments{
			Descriptions: []models.EndpointDescription{},
			Endpoints:    []models.EndpointSelection{},
		},
	}
}

// Load loads adjustments from a YAML file. An empty path or a missing file
// leaves the adjuster as a no-op.
func (a *Adjuster) Load(filePath string) error {
	if filePath == "" {
		logger.Info("No adjustments file provided")
		return nil
	}

	logger.Info("Loading adjustments from file", zap.String("file", filePath))
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		logger.Warn("Adjustments file not found", zap.String("file", filePath))
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var adjustments models.DocAdjustments
	if err := yaml.Unmarshal(data, &adjustments); err != nil {
		return err
	}

	a.adjustments = &adjustments
	return nil
}

// Included reports whether the given path and method should be documented.
// Without any endpoint selections everything is included.
func (a *Adjuster) Included(path, method string) bool {
	if a.adjustments == nil || len(a.adjustments.Endpoints) == 0 {
		return true
	}

	for _, selection := range a.adjustments.Endpoints {
		if selection.Path == path {
			for _, m := range selection.Methods {
				if m == method {
					return true
				}
			}
			return false // path selected but method not listed
		}
	}

	return false
}

// Description returns the override description for a path/method if one
// exists, otherwise the original
func (a *Adjuster) Description(path, method, originalDesc string) string {
	if a.adjustments == nil || len(a.adjustments.Descriptions) == 0 {
		return originalDesc
	}

	for _, desc := range a.adjustments.Descriptions {
		if desc.Path == path {
			for _, update := range desc.Updates {
				if update.Method == method {
					return update.NewDescription
				}
			}
			break
		}
	}

	return originalDesc
}
