package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when a workspace already contains a target with the same GUID.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrTargetNotFound is returned when a requested target is not found in the workspace.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrAmbiguousTargetName is returned when a bare target name matches targets in several projects.
	ErrAmbiguousTargetName = zerr.New("ambiguous target name, qualify it as project:target")

	// ErrNoTargetsSpecified is returned when no targets are specified for the resolve command.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrCycleDetected is returned when a cycle is detected in the resolved target graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrMissingProjectName is returned in workspace mode when a project file is missing a project name.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrInvalidProjectName is returned when a project name is invalid.
	ErrInvalidProjectName = zerr.New("project name can only contain alphanumeric characters, hyphens and underscores")

	// ErrDuplicateProjectName is returned when multiple projects share the same name in a workspace.
	ErrDuplicateProjectName = zerr.New("duplicate project name")

	// ErrInvalidTargetName is returned when a target name contains invalid characters.
	ErrInvalidTargetName = zerr.New("invalid target name")

	// ErrUnknownProductType is returned when a target declares a product type that is not supported.
	ErrUnknownProductType = zerr.New("unknown product type")

	// ErrInvalidPlatformFilter is returned when a dependency platform filter has no platform.
	ErrInvalidPlatformFilter = zerr.New("platform filter requires a platform")

	// ErrUnknownPlatform is returned when a platform name is not present in the registry.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrUnknownSDKVariant is returned when a platform's SDK does not provide the requested variant.
	ErrUnknownSDKVariant = zerr.New("unknown SDK variant")

	// ErrInvalidOverride is returned when a build setting override is not of the form KEY=VALUE.
	ErrInvalidOverride = zerr.New("invalid build setting override, expected KEY=VALUE")

	// ErrUnknownDiagnosticLevel is returned when a stored diagnostic has an unknown level.
	ErrUnknownDiagnosticLevel = zerr.New("unknown diagnostic level")

	// ErrInvalidRegistry is returned when a platform registry declaration is inconsistent.
	ErrInvalidRegistry = zerr.New("invalid platform registry")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find tgraph.yaml or tgraph.work.yaml")

	// ErrUnknownOutputFormat is returned when an output format is neither text nor json.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected text or json")

	// ErrResolutionFailed is returned when the resolved graph carries error diagnostics.
	ErrResolutionFailed = zerr.New("target graph resolution failed")

	// ErrResolutionCanceled is returned when resolution was canceled before producing a graph.
	ErrResolutionCanceled = zerr.New("target graph resolution canceled")

	// ErrPlanNotFound is returned when no plan is stored under a digest.
	ErrPlanNotFound = zerr.New("no stored plan for digest")

	// ErrStoreCreateFailed is returned when the plan store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create plan store directory")

	// ErrStoreReadFailed is returned when a stored plan cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stored plan")

	// ErrStoreUnmarshalFailed is returned when a stored plan cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored plan")

	// ErrStoreMarshalFailed is returned when a plan cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal plan")

	// ErrStoreWriteFailed is returned when a plan cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write plan")
)
