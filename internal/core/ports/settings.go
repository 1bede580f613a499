package ports

import "go.trai.ch/tgraph/internal/core/domain"

// SettingsPurpose distinguishes cached settings computed for different consumers.
type SettingsPurpose int

const (
	// PurposeBuild is the settings view used to build the target.
	PurposeBuild SettingsPurpose = iota
	// PurposeResolution is the settings view read while deciding how to specialize the target.
	PurposeResolution
)

// Settings is an immutable snapshot of evaluated build settings for one target and parameter set.
type Settings interface {
	// Platform returns the platform the target builds for, nil if it cannot be resolved.
	Platform() *domain.Platform
	// SDK returns the resolved SDK, nil if it cannot be resolved.
	SDK() *domain.SDK
	// SDKVariant returns the resolved SDK variant, nil if the SDK has none.
	SDKVariant() *domain.SDKVariant
	// SupportedPlatforms returns the platform names the target may build for.
	SupportedPlatforms() []string
	// Toolchains returns the effective toolchain identifiers.
	Toolchains() []string
	// Value returns the evaluated value of a named setting, empty if unset.
	Value(name string) string
	// EnableTargetPlatformSpecialization reports whether the target opts into specialization.
	EnableTargetPlatformSpecialization() bool
	// EnableBuildRequestOverrides reports whether the target honours build request overrides.
	EnableBuildRequestOverrides() bool
}

// SettingsProvider returns cached settings. The same inputs always yield the same Settings value.
type SettingsProvider interface {
	// Settings returns the settings of target under parameters. A nil target yields workspace settings.
	Settings(parameters *domain.BuildParameters, target *domain.Target, purpose SettingsPurpose) Settings
}

// WorkspaceContext bundles the collaborators the resolver reads from.
type WorkspaceContext interface {
	SettingsProvider
	// Workspace returns the loaded target graph.
	Workspace() *domain.Workspace
	// Registry returns the loaded platforms, SDKs and toolchains.
	Registry() *domain.Registry
}

// WorkspaceContextFactory creates a WorkspaceContext for a loaded workspace.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type WorkspaceContextFactory interface {
	New(workspace *domain.Workspace, registry *domain.Registry) WorkspaceContext
}
