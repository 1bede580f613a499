package config

import (
	"go.trai.ch/tgraph/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Workfile represents the structure of the tgraph.work.yaml configuration file.
type Workfile struct {
	Version          string            `yaml:"version"`
	Root             string            `yaml:"root"`
	Projects         []string          `yaml:"projects"`
	Settings         map[string]string `yaml:"settings"`
	Platforms        []*PlatformDTO    `yaml:"platforms"`
	Toolchains       []*ToolchainDTO   `yaml:"toolchains"`
	DefaultToolchain string            `yaml:"defaultToolchain"`
	HostPlatform     string            `yaml:"hostPlatform"`
}

// PlatformDTO declares a platform together with its SDKs.
type PlatformDTO struct {
	Name              string              `yaml:"name"`
	DisplayName       string              `yaml:"displayName"`
	Family            string              `yaml:"family"`
	Simulator         bool                `yaml:"simulator"`
	Counterpart       string              `yaml:"counterpart"`
	FilterName        string              `yaml:"filterName"`
	DefaultSDKVariant string              `yaml:"defaultSDKVariant"`
	Variants          []domain.SDKVariant `yaml:"variants"`
	// SDKSuffixes lists additional SDKs of the platform, e.g. "internal" for "<name>.internal".
	SDKSuffixes []string `yaml:"sdkSuffixes"`
}

// ToolchainDTO declares a toolchain.
type ToolchainDTO struct {
	Identifier string   `yaml:"identifier"`
	Aliases    []string `yaml:"aliases"`
}

// Projectfile represents the structure of the tgraph.yaml configuration file.
type Projectfile struct {
	Version  string                `yaml:"version"`
	Project  string                `yaml:"project"`
	Root     string                `yaml:"root"`
	Settings map[string]string     `yaml:"settings"`
	Targets  map[string]*TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Type           string            `yaml:"type"`
	ProductName    string            `yaml:"productName"`
	Package        bool              `yaml:"package"`
	Settings       map[string]string `yaml:"settings"`
	Dependencies   []DependencyDTO   `yaml:"dependencies"`
	Link           []string          `yaml:"link"`
	DynamicVariant string            `yaml:"dynamicVariant"`
}

// DependencyDTO is a dependency edge. A plain string is shorthand for an unfiltered edge.
type DependencyDTO struct {
	Target          string                  `yaml:"target"`
	PlatformFilters []domain.PlatformFilter `yaml:"platformFilters"`
}

// UnmarshalYAML accepts either a target reference or a mapping.
func (d *DependencyDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		d.Target = value.Value
		return nil
	}
	type plain DependencyDTO
	return value.Decode((*plain)(d))
}
