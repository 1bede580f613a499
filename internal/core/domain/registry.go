package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SDKVariant is a flavour of an SDK, such as Mac Catalyst on the macOS SDK.
type SDKVariant struct {
	Name string `json:"name" yaml:"name"`
	// FilterPlatform and FilterEnvironment override the platform filter identity of the variant.
	FilterPlatform    string `json:"filterPlatform,omitempty" yaml:"filterPlatform"`
	FilterEnvironment string `json:"filterEnvironment,omitempty" yaml:"filterEnvironment"`
}

// Platform is a loaded platform definition.
type Platform struct {
	Name              string `json:"name" yaml:"name"`
	DisplayName       string `json:"displayName" yaml:"displayName"`
	FamilyName        string `json:"family" yaml:"family"`
	IsSimulator       bool   `json:"simulator,omitempty" yaml:"simulator"`
	DefaultSDKVariant string `json:"defaultSDKVariant,omitempty" yaml:"defaultSDKVariant"`
	// Counterpart is the simulator of a device platform or the device of a simulator platform.
	Counterpart string `json:"counterpart,omitempty" yaml:"counterpart"`
	// FilterName is the name dependency platform filters use for this platform.
	FilterName string `json:"filterName,omitempty" yaml:"filterName"`
}

// SDK is a loaded SDK definition.
type SDK struct {
	// CanonicalName is the SDKROOT value selecting this SDK, suffix included.
	CanonicalName string       `json:"canonicalName" yaml:"canonicalName"`
	Platform      string       `json:"platform" yaml:"platform"`
	Suffix        string       `json:"suffix,omitempty" yaml:"suffix"`
	Variants      []SDKVariant `json:"variants,omitempty" yaml:"variants"`
}

// Variant looks up a variant by name.
func (s *SDK) Variant(name string) (*SDKVariant, bool) {
	for i := range s.Variants {
		if s.Variants[i].Name == name {
			return &s.Variants[i], true
		}
	}
	return nil, false
}

// Toolchain is a loaded toolchain.
type Toolchain struct {
	Identifier string   `json:"identifier" yaml:"identifier"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases"`
}

// Registry is the static catalog of platforms, SDKs and toolchains available to a build.
type Registry struct {
	Platforms        []*Platform  `json:"platforms"`
	SDKs             []*SDK       `json:"sdks"`
	Toolchains       []*Toolchain `json:"toolchains"`
	DefaultToolchain string       `json:"defaultToolchain"`
	HostPlatform     string       `json:"hostPlatform"`
}

// Platform looks up a platform by name.
func (r *Registry) Platform(name string) (*Platform, bool) {
	for _, p := range r.Platforms {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Host returns the platform of the build machine.
func (r *Registry) Host() (*Platform, bool) {
	return r.Platform(r.HostPlatform)
}

// SDK looks up an SDK by canonical name.
func (r *Registry) SDK(canonicalName string) (*SDK, bool) {
	for _, s := range r.SDKs {
		if s.CanonicalName == canonicalName {
			return s, true
		}
	}
	return nil, false
}

// SDKFor returns the SDK of platform with the given suffix. An empty suffix selects the public SDK.
func (r *Registry) SDKFor(platform, suffix string) (*SDK, bool) {
	for _, s := range r.SDKs {
		if s.Platform == platform && s.Suffix == suffix {
			return s, true
		}
	}
	return nil, false
}

// ResolveSDK resolves an SDKROOT value to an SDK. Both canonical SDK names and platform names are
// accepted; a platform name selects the public SDK of that platform.
func (r *Registry) ResolveSDK(value string) (*SDK, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == SDKRootAuto {
		return nil, false
	}
	if s, ok := r.SDK(value); ok {
		return s, true
	}
	if _, ok := r.Platform(value); ok {
		return r.SDKFor(value, "")
	}
	return nil, false
}

// DefaultVariant returns the default SDK variant of platform, if its public SDK declares one.
func (r *Registry) DefaultVariant(p *Platform) *SDKVariant {
	if p == nil || p.DefaultSDKVariant == "" {
		return nil
	}
	sdk, ok := r.SDKFor(p.Name, "")
	if !ok {
		return nil
	}
	v, _ := sdk.Variant(p.DefaultSDKVariant)
	return v
}

// Toolchain looks up a toolchain by identifier or alias.
func (r *Registry) Toolchain(id string) (*Toolchain, bool) {
	for _, t := range r.Toolchains {
		if t.Identifier == id {
			return t, true
		}
		for _, a := range t.Aliases {
			if a == id {
				return t, true
			}
		}
	}
	return nil, false
}

// DefaultToolchains returns the toolchain list used when nothing overrides it.
func (r *Registry) DefaultToolchains() []string {
	if r.DefaultToolchain == "" {
		return nil
	}
	return []string{r.DefaultToolchain}
}

// FilterContext returns the platform filter identity of a platform and optional SDK variant.
func (r *Registry) FilterContext(p *Platform, v *SDKVariant) PlatformFilterContext {
	if p == nil {
		return PlatformFilterContext{}
	}
	ctx := PlatformFilterContext{Platform: p.FilterName}
	if ctx.Platform == "" {
		ctx.Platform = p.Name
	}
	if p.IsSimulator {
		ctx.Environment = "simulator"
	}
	if v != nil {
		if v.FilterPlatform != "" {
			ctx.Platform = v.FilterPlatform
		}
		if v.FilterEnvironment != "" {
			ctx.Environment = v.FilterEnvironment
		}
	}
	return ctx
}

// Validate checks that every SDK and counterpart refers to a loaded platform and that names are unique.
func (r *Registry) Validate() error {
	seen := make(map[string]struct{}, len(r.Platforms))
	for _, p := range r.Platforms {
		if p.Name == "" {
			return zerr.With(ErrInvalidRegistry, "reason", "platform without name")
		}
		if _, dup := seen[p.Name]; dup {
			return zerr.With(zerr.With(ErrInvalidRegistry, "reason", "duplicate platform"), "platform", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	for _, p := range r.Platforms {
		if p.Counterpart != "" {
			if _, ok := seen[p.Counterpart]; !ok {
				return zerr.With(zerr.With(ErrUnknownPlatform, "platform", p.Counterpart), "counterpart_of", p.Name)
			}
		}
	}
	sdks := make(map[string]struct{}, len(r.SDKs))
	for _, s := range r.SDKs {
		if _, ok := seen[s.Platform]; !ok {
			return zerr.With(zerr.With(ErrUnknownPlatform, "platform", s.Platform), "sdk", s.CanonicalName)
		}
		if _, dup := sdks[s.CanonicalName]; dup {
			return zerr.With(zerr.With(ErrInvalidRegistry, "reason", "duplicate sdk"), "sdk", s.CanonicalName)
		}
		sdks[s.CanonicalName] = struct{}{}
	}
	for _, p := range r.Platforms {
		if p.DefaultSDKVariant == "" {
			continue
		}
		if r.DefaultVariant(p) == nil {
			return zerr.With(zerr.With(ErrUnknownSDKVariant, "variant", p.DefaultSDKVariant), "platform", p.Name)
		}
	}
	if r.HostPlatform != "" {
		if _, ok := seen[r.HostPlatform]; !ok {
			return zerr.With(zerr.With(ErrUnknownPlatform, "platform", r.HostPlatform), "field", "hostPlatform")
		}
	}
	if r.DefaultToolchain != "" {
		if _, ok := r.Toolchain(r.DefaultToolchain); !ok {
			return zerr.With(zerr.With(ErrInvalidRegistry, "reason", "unknown default toolchain"), "toolchain", r.DefaultToolchain)
		}
	}
	return nil
}

// DefaultToolchainIdentifier is the identifier of the toolchain bundled with the build system.
const DefaultToolchainIdentifier = "com.apple.dt.toolchain.XcodeDefault"

type platformDecl struct {
	name, display, family, counterpart, filter string
	simulator                                  bool
	variants                                   []SDKVariant
	defaultVariant                             string
}

// DefaultRegistry returns the built-in catalog used when a workspace declares no platforms.
// Every platform has a public and an internal SDK.
func DefaultRegistry() *Registry {
	decls := []platformDecl{
		{
			name: "macosx", display: "macOS", family: "macOS", filter: "macos",
			variants: []SDKVariant{
				{Name: "macos"},
				{Name: MacCatalystVariantName, FilterPlatform: "ios", FilterEnvironment: "maccatalyst"},
			},
			defaultVariant: "macos",
		},
		{name: "iphoneos", display: "iOS", family: "iOS", counterpart: "iphonesimulator", filter: "ios"},
		{name: "iphonesimulator", display: "iOS Simulator", family: "iOS", counterpart: "iphoneos", filter: "ios", simulator: true},
		{name: "appletvos", display: "tvOS", family: "tvOS", counterpart: "appletvsimulator", filter: "tvos"},
		{name: "appletvsimulator", display: "tvOS Simulator", family: "tvOS", counterpart: "appletvos", filter: "tvos", simulator: true},
		{name: "watchos", display: "watchOS", family: "watchOS", counterpart: "watchsimulator", filter: "watchos"},
		{name: "watchsimulator", display: "watchOS Simulator", family: "watchOS", counterpart: "watchos", filter: "watchos", simulator: true},
		{name: "xros", display: "visionOS", family: "visionOS", counterpart: "xrsimulator", filter: "visionos"},
		{name: "xrsimulator", display: "visionOS Simulator", family: "visionOS", counterpart: "xros", filter: "visionos", simulator: true},
		{name: "driverkit", display: "DriverKit", family: "DriverKit", filter: "driverkit"},
	}

	r := &Registry{
		DefaultToolchain: DefaultToolchainIdentifier,
		HostPlatform:     "macosx",
		Toolchains: []*Toolchain{
			{Identifier: DefaultToolchainIdentifier, Aliases: []string{"default"}},
			{Identifier: "org.swift.latest", Aliases: []string{"swift"}},
		},
	}
	for _, d := range decls {
		r.Platforms = append(r.Platforms, &Platform{
			Name:              d.name,
			DisplayName:       d.display,
			FamilyName:        d.family,
			IsSimulator:       d.simulator,
			DefaultSDKVariant: d.defaultVariant,
			Counterpart:       d.counterpart,
			FilterName:        d.filter,
		})
		r.SDKs = append(r.SDKs,
			&SDK{CanonicalName: d.name, Platform: d.name, Variants: d.variants},
			&SDK{CanonicalName: d.name + "." + InternalSDKSuffix, Platform: d.name, Suffix: InternalSDKSuffix, Variants: d.variants},
		)
	}
	return r
}
