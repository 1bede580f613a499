package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// OutputFormat selects how plans and registries are rendered.
type OutputFormat string

const (
	// FormatText is the human-readable listing.
	FormatText OutputFormat = "text"
	// FormatJSON is the machine-readable document, identical to what the plan store persists.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a format name. An empty name means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatText, nil
	}
	f := OutputFormat(s)
	if !slices.Contains([]OutputFormat{FormatText, FormatJSON}, f) {
		return "", zerr.With(ErrUnknownOutputFormat, "format", s)
	}
	return f, nil
}

// PlanTarget is the persisted view of one configured target.
type PlanTarget struct {
	GUID             string            `json:"guid"`
	Target           string            `json:"target"`
	Project          string            `json:"project,omitempty"`
	Platform         string            `json:"platform,omitempty"`
	SDK              string            `json:"sdk,omitempty"`
	SDKVariant       string            `json:"sdkVariant,omitempty"`
	TopLevel         bool              `json:"topLevel,omitempty"`
	MergeableLibrary bool              `json:"mergeableLibrary,omitempty"`
	Overrides        map[string]string `json:"overrides,omitempty"`
	Dependencies     []string          `json:"dependencies,omitempty"`
}

// Plan is a resolved target graph in a form that can be rendered and stored.
type Plan struct {
	Digest         string          `json:"digest"`
	Action         BuildAction     `json:"action"`
	Configuration  string          `json:"configuration,omitempty"`
	RunDestination *RunDestination `json:"runDestination,omitempty"`
	Targets        []PlanTarget    `json:"targets"`
	Diagnostics    []Diagnostic    `json:"diagnostics,omitempty"`
}

// HasErrors reports whether the plan carries error diagnostics.
func (p *Plan) HasErrors() bool {
	for _, d := range p.Diagnostics {
		if d.Level == LevelError {
			return true
		}
	}
	return false
}
