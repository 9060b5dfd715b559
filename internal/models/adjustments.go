package models

// EndpointFieldUpdate overrides the documented description for one method on a path.
type EndpointFieldUpdate struct {
	Method         string `yaml:"method"`
	NewDescription string `yaml:"new_description"`
}

// EndpointDescription collects description overrides for a single path.
type EndpointDescription struct {
	Path    string                `yaml:"path"`
	Updates []EndpointFieldUpdate `yaml:"updates"`
}

// EndpointSelection names the methods on a path that should be documented.
type EndpointSelection struct {
	Path    string   `yaml:"path"`
	Methods []string `yaml:"methods"`
}

// DocAdjustments is the YAML adjustments file: optional endpoint filtering
// plus optional description overrides, applied during extraction.
type DocAdjustments struct {
	Descriptions []EndpointDescription `yaml:"descriptions,omitempty"`
	Endpoints    []EndpointSelection   `yaml:"endpoints,omitempty"`
}
