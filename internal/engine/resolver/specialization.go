package resolver

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
)

// SourceKind tells where a specialization came from.
type SourceKind int

const (
	// SourceSynthesized specializations are created by the resolver, e.g. per index platform.
	SourceSynthesized SourceKind = iota
	// SourceWorkspace specializations derive from the build request.
	SourceWorkspace
	// SourceTarget specializations derive from a dependent target.
	SourceTarget
)

// Source is the provenance of a specialization.
type Source struct {
	Kind   SourceKind
	Target string
}

// String returns a human readable provenance.
func (s Source) String() string {
	switch s.Kind {
	case SourceWorkspace:
		return "workspace"
	case SourceTarget:
		return "target '" + s.Target + "'"
	default:
		return "synthesized"
	}
}

// Specialization describes a requested platform, SDK variant, supported platforms, toolchain and
// SDK suffix. Unset fields impose nothing. It is a pure value; diagnostics produced while
// computing it are carried in Diagnostics and flushed by the caller.
type Specialization struct {
	Source             Source
	Platform           *domain.Platform
	SDKVariant         *domain.SDKVariant
	SupportedPlatforms []string
	Toolchain          []string
	// SDKSuffix is nil when unset; an empty string explicitly requests the public SDK.
	SDKSuffix    *string
	Superimposed domain.SuperimposedProperties
	Diagnostics  []domain.Diagnostic
}

func suffixPtr(s string) *string {
	return &s
}

func platformName(p *domain.Platform) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func variantName(v *domain.SDKVariant) string {
	if v == nil {
		return ""
	}
	return v.Name
}

func sdkSuffix(s ports.Settings) string {
	if sdk := s.SDK(); sdk != nil {
		return sdk.Suffix
	}
	return ""
}

// Equal compares every field except diagnostics.
func (s *Specialization) Equal(other *Specialization) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Source == other.Source &&
		platformName(s.Platform) == platformName(other.Platform) &&
		(s.Platform == nil) == (other.Platform == nil) &&
		variantName(s.SDKVariant) == variantName(other.SDKVariant) &&
		(s.SDKVariant == nil) == (other.SDKVariant == nil) &&
		slices.Equal(s.SupportedPlatforms, other.SupportedPlatforms) &&
		slices.Equal(s.Toolchain, other.Toolchain) &&
		(s.Toolchain == nil) == (other.Toolchain == nil) &&
		equalSuffix(s.SDKSuffix, other.SDKSuffix) &&
		s.Superimposed == other.Superimposed
}

func equalSuffix(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String describes the specialization for logs.
func (s *Specialization) String() string {
	var parts []string
	if s.Platform != nil {
		parts = append(parts, "platform="+s.Platform.Name)
	}
	if s.SDKVariant != nil {
		parts = append(parts, "variant="+s.SDKVariant.Name)
	}
	if len(s.SupportedPlatforms) > 0 {
		parts = append(parts, "supported="+strings.Join(s.SupportedPlatforms, ","))
	}
	if s.Toolchain != nil {
		parts = append(parts, "toolchain="+strings.Join(s.Toolchain, ","))
	}
	if s.SDKSuffix != nil {
		parts = append(parts, fmt.Sprintf("suffix=%q", *s.SDKSuffix))
	}
	if s.Superimposed.MergeableLibrary {
		parts = append(parts, "mergeable")
	}
	return s.Source.String() + "{" + strings.Join(parts, " ") + "}"
}

// DefaultSpecialization derives the workspace-level specialization from the build request: an
// SDKROOT command-line or environment override if it resolves, else the run destination, else none.
func DefaultSpecialization(reg *domain.Registry, parameters *domain.BuildParameters) *Specialization {
	spec := &Specialization{
		Source:    Source{Kind: SourceWorkspace},
		Toolchain: parameters.ToolchainOverride(),
	}

	if sdkroot, ok := parameters.UserOverride(domain.SettingSDKRoot); ok && sdkroot != "" && sdkroot != domain.SDKRootAuto {
		sdk, found := reg.ResolveSDK(sdkroot)
		var platform *domain.Platform
		if found {
			platform, found = reg.Platform(sdk.Platform)
		}
		if !found {
			spec.Diagnostics = append(spec.Diagnostics, domain.Diagnostic{
				Level:   domain.LevelWarning,
				Message: fmt.Sprintf("unable to resolve SDKROOT override '%s' to a loaded platform", sdkroot),
			})
			return spec
		}
		spec.Platform = platform
		spec.SDKSuffix = suffixPtr(sdk.Suffix)
		if name, ok := parameters.UserOverride(domain.SettingSDKVariant); ok && name != "" {
			spec.SDKVariant, _ = sdk.Variant(name)
		}
		return spec
	}

	rd := parameters.ActiveRunDestination
	if rd == nil {
		return spec
	}
	platform, ok := reg.Platform(rd.Platform)
	if !ok {
		spec.Diagnostics = append(spec.Diagnostics, domain.Diagnostic{
			Level:   domain.LevelWarning,
			Message: fmt.Sprintf("unable to resolve run destination platform '%s' to a loaded platform", rd.Platform),
		})
		return spec
	}
	spec.Platform = platform
	if rd.SDKVariant != "" {
		if sdk, ok := reg.SDKFor(platform.Name, ""); ok {
			spec.SDKVariant, _ = sdk.Variant(rd.SDKVariant)
		}
	}
	return spec
}

// SpecializationFrom computes the specialization the configured dependent ct imposes on its
// dependencies, given its settings s. Transparent aggregates impose the workspace default.
func SpecializationFrom(
	ct *domain.ConfiguredTarget,
	s ports.Settings,
	reg *domain.Registry,
	request *domain.BuildRequest,
	workspaceDefault *Specialization,
	transparentAggregates bool,
) *Specialization {
	if ct.Target().IsAggregate() && transparentAggregates {
		return workspaceDefault
	}

	toolchain := s.Toolchains()
	expected := request.Parameters.ToolchainOverride()
	if expected == nil {
		expected = reg.DefaultToolchains()
	}
	if slices.Equal(toolchain, expected) {
		toolchain = nil
	}

	return &Specialization{
		Source:             Source{Kind: SourceTarget, Target: ct.Target().Name},
		Platform:           s.Platform(),
		SDKVariant:         s.SDKVariant(),
		SupportedPlatforms: s.SupportedPlatforms(),
		Toolchain:          toolchain,
		SDKSuffix:          suffixPtr(sdkSuffix(s)),
		Superimposed: domain.SuperimposedProperties{
			MergeableLibrary: domain.BoolSetting(s.Value(domain.SettingAutomaticallyMergeDependencies)),
		},
	}
}

// IsCompatible reports whether a configured target with settings s satisfies the specialization:
// platform, SDK variant, toolchain and SDK suffix each either unset or matching.
func (s *Specialization) IsCompatible(settings ports.Settings) bool {
	if s.Platform != nil && platformName(settings.Platform()) != s.Platform.Name {
		return false
	}
	if s.SDKVariant != nil && variantName(settings.SDKVariant()) != s.SDKVariant.Name {
		return false
	}
	if s.Toolchain != nil && !slices.Equal(s.Toolchain, settings.Toolchains()) {
		return false
	}
	if s.SDKSuffix != nil && sdkSuffix(settings) != *s.SDKSuffix {
		return false
	}
	return true
}

// Imposed returns parameters with the specialization's overrides merged in. Imposing the same
// specialization twice yields the same parameters.
func (s *Specialization) Imposed(parameters *domain.BuildParameters, reg *domain.Registry) *domain.BuildParameters {
	overrides := make(map[string]string)

	if s.Platform != nil {
		suffix := ""
		if s.SDKSuffix != nil {
			suffix = *s.SDKSuffix
		}
		sdkroot := s.Platform.Name
		if sdk, ok := reg.SDKFor(s.Platform.Name, suffix); ok {
			sdkroot = sdk.CanonicalName
		} else if sdk, ok := reg.SDKFor(s.Platform.Name, ""); ok {
			sdkroot = sdk.CanonicalName
		}
		overrides[domain.SettingSDKRoot] = sdkroot

		if s.SDKVariant != nil {
			overrides[domain.SettingSDKVariant] = s.SDKVariant.Name
			if s.SDKVariant.Name == domain.MacCatalystVariantName {
				overrides[domain.SettingSupportsMacCatalyst] = "YES"
			}
		}
	}

	if len(s.SupportedPlatforms) > 0 {
		rd := parameters.ActiveRunDestination
		if rd == nil || !slices.Contains(s.SupportedPlatforms, rd.Platform) {
			overrides[domain.SettingSupportedPlatforms] = strings.Join(s.SupportedPlatforms, " ")
		}
	}

	if s.Toolchain != nil {
		overrides[domain.SettingToolchains] = strings.Join(s.Toolchain, " ")
	}

	return parameters.MergingOverrides(overrides)
}

// EffectiveProperties narrows the superimposed properties for the edge from target to dependency:
// a dependency is only made mergeable when target actually links it.
func (s *Specialization) EffectiveProperties(target, dependency *domain.Target) *Specialization {
	if !s.Superimposed.MergeableLibrary || target.Links(dependency) {
		return s
	}
	narrowed := *s
	narrowed.Superimposed.MergeableLibrary = false
	return &narrowed
}

// WithoutDiagnostics returns a copy with diagnostics dropped, once they have been flushed.
func (s *Specialization) WithoutDiagnostics() *Specialization {
	if len(s.Diagnostics) == 0 {
		return s
	}
	c := *s
	c.Diagnostics = nil
	return &c
}
