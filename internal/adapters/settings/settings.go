// Package settings evaluates layered build settings for targets and resolves their platform and SDK.
package settings

import (
	"slices"
	"strings"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
)

// Layer identifies where a setting value came from. Later layers win.
type Layer int

const (
	// LayerUnset means no layer defines the setting.
	LayerUnset Layer = iota
	// LayerWorkspace is the workfile settings block.
	LayerWorkspace
	// LayerProject is the project settings block.
	LayerProject
	// LayerTarget is the target settings block.
	LayerTarget
	// LayerEnvironment is the environment override layer of the build parameters.
	LayerEnvironment
	// LayerCommandLine is the command-line override layer of the build parameters.
	LayerCommandLine
	// LayerOverrides is the override table, where specialization imposes its values.
	LayerOverrides
)

// Settings is an immutable evaluated settings snapshot.
type Settings struct {
	table  map[string]string
	layers map[string]Layer
	host   string

	platform   *domain.Platform
	sdk        *domain.SDK
	variant    *domain.SDKVariant
	supported  []string
	toolchains []string

	specialization        bool
	buildRequestOverrides bool
}

var _ ports.Settings = (*Settings)(nil)

// Platform implements ports.Settings.
func (s *Settings) Platform() *domain.Platform { return s.platform }

// SDK implements ports.Settings.
func (s *Settings) SDK() *domain.SDK { return s.sdk }

// SDKVariant implements ports.Settings.
func (s *Settings) SDKVariant() *domain.SDKVariant { return s.variant }

// SupportedPlatforms implements ports.Settings.
func (s *Settings) SupportedPlatforms() []string { return slices.Clone(s.supported) }

// Toolchains implements ports.Settings.
func (s *Settings) Toolchains() []string { return slices.Clone(s.toolchains) }

// EnableTargetPlatformSpecialization implements ports.Settings.
func (s *Settings) EnableTargetPlatformSpecialization() bool { return s.specialization }

// EnableBuildRequestOverrides implements ports.Settings.
func (s *Settings) EnableBuildRequestOverrides() bool { return s.buildRequestOverrides }

// Layer returns the layer that defined name.
func (s *Settings) Layer(name string) Layer { return s.layers[name] }

// Value returns the evaluated value of name. Platform and SDK settings report resolved values.
func (s *Settings) Value(name string) string {
	switch name {
	case domain.SettingPlatformName:
		if s.platform != nil {
			return s.platform.Name
		}
	case domain.SettingEffectivePlatformName:
		if s.platform != nil {
			if s.variant != nil && s.variant.Name == domain.MacCatalystVariantName {
				return "-maccatalyst"
			}
			if s.platform.Name == s.host {
				return ""
			}
			return "-" + s.platform.Name
		}
	case domain.SettingSDKRoot:
		if s.sdk != nil {
			return s.sdk.CanonicalName
		}
	case domain.SettingSDKVariant:
		if s.variant != nil {
			return s.variant.Name
		}
	case domain.SettingSupportedPlatforms:
		return strings.Join(s.supported, " ")
	case domain.SettingToolchains:
		return strings.Join(s.toolchains, " ")
	}
	return s.table[name]
}

func (s *Settings) apply(layer Layer, values map[string]string) {
	for k, v := range values {
		s.table[k] = v
		s.layers[k] = layer
	}
}

// evaluate computes the settings of target under params. A nil target yields workspace settings.
func evaluate(ws *domain.Workspace, reg *domain.Registry, params *domain.BuildParameters, target *domain.Target) *Settings {
	s := &Settings{
		table:  make(map[string]string),
		layers: make(map[string]Layer),
	}
	s.apply(LayerWorkspace, ws.Settings())
	if target != nil {
		if p := ws.ProjectFor(target); p != nil {
			s.apply(LayerProject, p.Settings)
		}
		s.apply(LayerTarget, target.Settings)
	}
	s.apply(LayerEnvironment, params.EnvironmentOverrides)
	s.apply(LayerCommandLine, params.CommandLineOverrides)
	s.apply(LayerOverrides, params.Overrides)
	if _, ok := s.table[domain.SettingConfiguration]; !ok && params.Configuration != "" {
		s.table[domain.SettingConfiguration] = params.Configuration
	}
	s.host = reg.HostPlatform

	sdkroot := strings.TrimSpace(s.table[domain.SettingSDKRoot])
	auto := sdkroot == domain.SDKRootAuto
	catalyst := domain.BoolSetting(s.table[domain.SettingSupportsMacCatalyst])
	declared := strings.Fields(s.table[domain.SettingSupportedPlatforms])
	rd := params.ActiveRunDestination

	s.specialization = auto || domain.BoolSetting(s.table[domain.SettingAllowTargetPlatformSpecialization])
	s.buildRequestOverrides = domain.BoolSetting(s.table[domain.SettingAllowBuildRequestOverrides])

	switch {
	case auto:
		s.sdk = autoSDK(reg, rd, candidatePlatforms(reg, declared))
	case sdkroot == "" && target == nil && rd != nil:
		s.sdk = runDestinationSDK(reg, rd)
	case sdkroot == "":
		s.sdk = defaultSDK(reg, declared)
	default:
		s.sdk, _ = reg.ResolveSDK(sdkroot)
	}
	if s.sdk != nil {
		s.platform, _ = reg.Platform(s.sdk.Platform)
	}

	s.supported = supportedPlatforms(reg, declared, auto, s.platform, catalyst)

	followsRunDestination := auto
	if !auto && s.layers[domain.SettingSDKRoot] != LayerOverrides && rd != nil && s.platform != nil {
		followsRunDestination = s.switchToRunDestination(reg, rd, catalyst)
	}

	s.variant = s.resolveVariant(reg, rd, followsRunDestination, catalyst)
	s.toolchains = resolveToolchains(reg, params, s.table)
	return s
}

func candidatePlatforms(reg *domain.Registry, declared []string) []string {
	if len(declared) > 0 {
		return declared
	}
	names := make([]string, 0, len(reg.Platforms))
	for _, p := range reg.Platforms {
		names = append(names, p.Name)
	}
	return names
}

// defaultSDK is the SDK of a target without SDKROOT: the first declared supported platform that
// has one, else the host's.
func defaultSDK(reg *domain.Registry, declared []string) *domain.SDK {
	for _, name := range declared {
		if sdk, ok := reg.SDKFor(name, ""); ok {
			return sdk
		}
	}
	sdk, _ := reg.SDKFor(reg.HostPlatform, "")
	return sdk
}

func runDestinationSDK(reg *domain.Registry, rd *domain.RunDestination) *domain.SDK {
	if sdk, ok := reg.SDK(rd.SDK); ok && sdk.Platform == rd.Platform {
		return sdk
	}
	sdk, _ := reg.SDKFor(rd.Platform, "")
	return sdk
}

// autoSDK follows the run destination when its platform is a candidate, else takes the first
// candidate that has an SDK.
func autoSDK(reg *domain.Registry, rd *domain.RunDestination, candidates []string) *domain.SDK {
	if rd != nil && slices.Contains(candidates, rd.Platform) {
		if sdk := runDestinationSDK(reg, rd); sdk != nil {
			return sdk
		}
	}
	for _, name := range candidates {
		if sdk, ok := reg.SDKFor(name, ""); ok {
			return sdk
		}
	}
	return nil
}

func supportedPlatforms(
	reg *domain.Registry,
	declared []string,
	auto bool,
	platform *domain.Platform,
	catalyst bool,
) []string {
	var out []string
	switch {
	case len(declared) > 0:
		out = slices.Clone(declared)
	case auto:
		out = candidatePlatforms(reg, nil)
	case platform != nil:
		out = []string{platform.Name}
		if platform.Counterpart != "" {
			out = append(out, platform.Counterpart)
		}
	}
	if catalyst && slices.Contains(out, domain.IOSPlatformName) && !slices.Contains(out, domain.MacOSPlatformName) {
		if _, ok := reg.Platform(domain.MacOSPlatformName); ok {
			out = append(out, domain.MacOSPlatformName)
		}
	}
	return out
}

// switchToRunDestination moves a fixed SDKROOT to the run destination's platform when the run
// destination is the same family and supported, or is a variant the target opted into. It
// reports whether the run destination was adopted.
func (s *Settings) switchToRunDestination(reg *domain.Registry, rd *domain.RunDestination, catalyst bool) bool {
	if rd.Platform == s.platform.Name {
		return true
	}
	rdPlatform, ok := reg.Platform(rd.Platform)
	if !ok {
		return false
	}

	if catalyst && rd.SDKVariant != "" {
		if rdSDK, ok := reg.SDKFor(rdPlatform.Name, s.sdk.Suffix); ok {
			if v, ok := rdSDK.Variant(rd.SDKVariant); ok && v.FilterPlatform != "" && v.FilterPlatform == s.platform.FilterName {
				s.sdk = rdSDK
				s.platform = rdPlatform
				return true
			}
		}
	}

	if rdPlatform.FamilyName != s.platform.FamilyName || !slices.Contains(s.supported, rdPlatform.Name) {
		return false
	}
	sdk, ok := reg.SDKFor(rdPlatform.Name, s.sdk.Suffix)
	if !ok {
		if sdk, ok = reg.SDKFor(rdPlatform.Name, ""); !ok {
			return false
		}
	}
	s.sdk = sdk
	s.platform = rdPlatform
	return true
}

func (s *Settings) resolveVariant(
	reg *domain.Registry,
	rd *domain.RunDestination,
	followsRunDestination bool,
	catalyst bool,
) *domain.SDKVariant {
	if s.sdk == nil {
		return nil
	}
	if name := strings.TrimSpace(s.table[domain.SettingSDKVariant]); name != "" {
		v, _ := s.sdk.Variant(name)
		return v
	}
	if followsRunDestination && rd != nil && rd.Platform == s.sdk.Platform && rd.SDKVariant != "" {
		if v, ok := s.sdk.Variant(rd.SDKVariant); ok {
			if v.Name != domain.MacCatalystVariantName || catalyst {
				return v
			}
		}
	}
	return reg.DefaultVariant(s.platform)
}

// resolveToolchains prefers an imposed TOOLCHAINS override, then the parameters' toolchain,
// then TOOLCHAINS from any other layer, then the registry default.
func resolveToolchains(reg *domain.Registry, params *domain.BuildParameters, table map[string]string) []string {
	if v, ok := params.Overrides[domain.SettingToolchains]; ok && strings.TrimSpace(v) != "" {
		return strings.Fields(v)
	}
	if params.Toolchain != "" {
		return []string{params.Toolchain}
	}
	if v := strings.Fields(table[domain.SettingToolchains]); len(v) > 0 {
		return v
	}
	return reg.DefaultToolchains()
}
