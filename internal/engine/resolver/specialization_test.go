package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tgraph/internal/adapters/settings"
	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
	"go.trai.ch/tgraph/internal/engine/resolver"
)

func suffix(s string) *string {
	return &s
}

func TestSpecialization_ImposedIsIdempotent(t *testing.T) {
	reg := domain.DefaultRegistry()
	macosx := mustPlatform(t, reg, "macosx")
	iphoneos := mustPlatform(t, reg, "iphoneos")
	sdk, _ := reg.SDKFor("macosx", "")
	catalyst, _ := sdk.Variant(domain.MacCatalystVariantName)

	specs := []*resolver.Specialization{
		{},
		{Platform: macosx},
		{Platform: macosx, SDKVariant: catalyst},
		{Platform: iphoneos, SDKSuffix: suffix(domain.InternalSDKSuffix)},
		{Platform: iphoneos, SupportedPlatforms: []string{"iphoneos", "iphonesimulator"}},
		{Toolchain: []string{"org.swift.latest"}},
	}
	bases := []*domain.BuildParameters{
		destination("macosx", "macos"),
		destination("appletvos", ""),
		{Action: domain.ActionBuild, Overrides: map[string]string{"SDKROOT": "driverkit", "OTHER": "1"}},
	}

	for _, spec := range specs {
		for _, p := range bases {
			once := spec.Imposed(p, reg)
			twice := spec.Imposed(once, reg)
			assert.Equal(t, once.Key(), twice.Key(), "%s on %s", spec, p.Key())
		}
	}
}

func TestSpecialization_Imposed(t *testing.T) {
	reg := domain.DefaultRegistry()
	sdk, _ := reg.SDKFor("macosx", "")
	catalyst, _ := sdk.Variant(domain.MacCatalystVariantName)

	tests := []struct {
		name string
		spec *resolver.Specialization
		base *domain.BuildParameters
		want map[string]string
	}{
		{
			name: "nothing requested",
			spec: &resolver.Specialization{},
			base: destination("macosx", "macos"),
			want: nil,
		},
		{
			name: "internal suffix selects the internal SDK",
			spec: &resolver.Specialization{Platform: mustPlatform(t, reg, "iphoneos"), SDKSuffix: suffix("internal")},
			base: destination("macosx", "macos"),
			want: map[string]string{"SDKROOT": "iphoneos.internal"},
		},
		{
			name: "unknown suffix falls back to the public SDK",
			spec: &resolver.Specialization{Platform: mustPlatform(t, reg, "iphoneos"), SDKSuffix: suffix("other")},
			base: destination("macosx", "macos"),
			want: map[string]string{"SDKROOT": "iphoneos"},
		},
		{
			name: "Mac Catalyst opts the target in",
			spec: &resolver.Specialization{Platform: mustPlatform(t, reg, "macosx"), SDKVariant: catalyst},
			base: destination("macosx", "iosmac"),
			want: map[string]string{"SDKROOT": "macosx", "SDK_VARIANT": "iosmac", "SUPPORTS_MACCATALYST": "YES"},
		},
		{
			name: "supported platforms are kept when the run destination is one of them",
			spec: &resolver.Specialization{SupportedPlatforms: []string{"iphoneos", "iphonesimulator"}},
			base: destination("iphonesimulator", ""),
			want: nil,
		},
		{
			name: "supported platforms are imposed otherwise",
			spec: &resolver.Specialization{SupportedPlatforms: []string{"iphoneos", "iphonesimulator"}},
			base: destination("macosx", ""),
			want: map[string]string{"SUPPORTED_PLATFORMS": "iphoneos iphonesimulator"},
		},
		{
			name: "toolchain",
			spec: &resolver.Specialization{Toolchain: []string{"a", "b"}},
			base: destination("macosx", ""),
			want: map[string]string{"TOOLCHAINS": "a b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Imposed(tt.base, reg).Overrides)
		})
	}
}

func TestSpecialization_IsCompatibleWithItsOwnImposition(t *testing.T) {
	f := newFixture(domain.DefaultRegistry())
	target := f.add(t, "Lib", domain.ProductTypeFramework, map[string]string{"SDKROOT": "auto"})
	wc := settings.NewContext(f.ws, f.reg)
	sdk, _ := f.reg.SDKFor("macosx", "")
	catalyst, _ := sdk.Variant(domain.MacCatalystVariantName)

	specs := []*resolver.Specialization{
		{Platform: mustPlatform(t, f.reg, "iphonesimulator")},
		{Platform: mustPlatform(t, f.reg, "macosx"), SDKVariant: catalyst},
		{Platform: mustPlatform(t, f.reg, "xros"), SDKSuffix: suffix("internal")},
		{Platform: mustPlatform(t, f.reg, "watchos"), Toolchain: []string{"org.swift.latest"}},
	}
	for _, spec := range specs {
		p := spec.Imposed(destination("macosx", "macos"), f.reg)
		s := wc.Settings(p, target, ports.PurposeBuild)
		assert.True(t, spec.IsCompatible(s), "%s", spec)
	}

	other := &resolver.Specialization{Platform: mustPlatform(t, f.reg, "iphoneos")}
	s := wc.Settings(specs[0].Imposed(destination("macosx", "macos"), f.reg), target, ports.PurposeBuild)
	assert.False(t, other.IsCompatible(s))
	assert.True(t, (&resolver.Specialization{}).IsCompatible(s))
}

func TestSpecialization_Equal(t *testing.T) {
	reg := domain.DefaultRegistry()
	a := &resolver.Specialization{
		Source:      resolver.Source{Kind: resolver.SourceTarget, Target: "App"},
		Platform:    mustPlatform(t, reg, "macosx"),
		SDKSuffix:   suffix(""),
		Diagnostics: []domain.Diagnostic{{Level: domain.LevelWarning, Message: "ignored"}},
	}
	b := &resolver.Specialization{
		Source:    resolver.Source{Kind: resolver.SourceTarget, Target: "App"},
		Platform:  mustPlatform(t, reg, "macosx"),
		SDKSuffix: suffix(""),
	}
	assert.True(t, a.Equal(b))

	b.SDKSuffix = nil
	assert.False(t, a.Equal(b))

	b.SDKSuffix = suffix("")
	b.Source = resolver.Source{Kind: resolver.SourceWorkspace}
	assert.False(t, a.Equal(b))

	assert.True(t, (*resolver.Specialization)(nil).Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestSpecialization_String(t *testing.T) {
	reg := domain.DefaultRegistry()
	spec := &resolver.Specialization{
		Source:             resolver.Source{Kind: resolver.SourceTarget, Target: "App"},
		Platform:           mustPlatform(t, reg, "iphoneos"),
		SupportedPlatforms: []string{"iphoneos", "iphonesimulator"},
		SDKSuffix:          suffix("internal"),
		Superimposed:       domain.SuperimposedProperties{MergeableLibrary: true},
	}
	assert.Equal(t,
		`target 'App'{platform=iphoneos supported=iphoneos,iphonesimulator suffix="internal" mergeable}`,
		spec.String())
}

func TestSpecialization_EffectiveProperties(t *testing.T) {
	app := &domain.Target{Name: "App", LinkedProducts: []string{"Frameworks/Linked.framework"}}
	linked := &domain.Target{Name: "Linked", ProductType: domain.ProductTypeFramework}
	other := &domain.Target{Name: "Other", ProductType: domain.ProductTypeFramework}

	spec := &resolver.Specialization{Superimposed: domain.SuperimposedProperties{MergeableLibrary: true}}

	assert.Same(t, spec, spec.EffectiveProperties(app, linked))
	narrowed := spec.EffectiveProperties(app, other)
	assert.False(t, narrowed.Superimposed.MergeableLibrary)
	assert.True(t, spec.Superimposed.MergeableLibrary)
}

func TestDefaultSpecialization(t *testing.T) {
	reg := domain.DefaultRegistry()

	t.Run("run destination", func(t *testing.T) {
		spec := resolver.DefaultSpecialization(reg, destination("macosx", "iosmac"))
		require.NotNil(t, spec.Platform)
		assert.Equal(t, "macosx", spec.Platform.Name)
		assert.Equal(t, domain.MacCatalystVariantName, spec.SDKVariant.Name)
		assert.Nil(t, spec.SDKSuffix)
		assert.Empty(t, spec.Diagnostics)
	})

	t.Run("SDKROOT override wins", func(t *testing.T) {
		p := destination("macosx", "macos")
		p.CommandLineOverrides = map[string]string{"SDKROOT": "iphoneos.internal", "TOOLCHAINS": "swift"}
		spec := resolver.DefaultSpecialization(reg, p)
		assert.Equal(t, "iphoneos", spec.Platform.Name)
		require.NotNil(t, spec.SDKSuffix)
		assert.Equal(t, domain.InternalSDKSuffix, *spec.SDKSuffix)
		assert.Equal(t, []string{"swift"}, spec.Toolchain)
	})

	t.Run("unknown run destination warns", func(t *testing.T) {
		spec := resolver.DefaultSpecialization(reg, destination("palmos", ""))
		assert.Nil(t, spec.Platform)
		require.Len(t, spec.Diagnostics, 1)
		assert.Equal(t, domain.LevelWarning, spec.Diagnostics[0].Level)
		assert.Empty(t, spec.WithoutDiagnostics().Diagnostics)
	})

	t.Run("no run destination", func(t *testing.T) {
		spec := resolver.DefaultSpecialization(reg, &domain.BuildParameters{})
		assert.Nil(t, spec.Platform)
		assert.Empty(t, spec.Diagnostics)
	})
}

func TestSpecializationFrom(t *testing.T) {
	f := newFixture(domain.DefaultRegistry())
	app := f.add(t, "App", domain.ProductTypeApplication, map[string]string{
		"SDKROOT":                          "iphoneos",
		"AUTOMATICALLY_MERGE_DEPENDENCIES": "YES",
	})
	tool := f.add(t, "Tool", domain.ProductTypeTool, map[string]string{
		"SDKROOT":    "macosx",
		"TOOLCHAINS": "org.swift.latest",
	})
	agg := f.add(t, "All", domain.ProductTypeAggregate, nil)
	wc := settings.NewContext(f.ws, f.reg)

	params := destination("iphonesimulator", "")
	request := domain.NewBuildRequest(params, []*domain.Target{app}, false)
	def := resolver.DefaultSpecialization(f.reg, params)

	specFor := func(target *domain.Target, transparent bool) *resolver.Specialization {
		ct := domain.NewConfiguredTarget(target, params, false)
		s := wc.Settings(params, target, ports.PurposeBuild)
		return resolver.SpecializationFrom(ct, s, f.reg, request, def, transparent)
	}

	spec := specFor(app, true)
	assert.Equal(t, resolver.Source{Kind: resolver.SourceTarget, Target: "App"}, spec.Source)
	assert.Equal(t, "iphonesimulator", spec.Platform.Name)
	assert.Equal(t, []string{"iphoneos", "iphonesimulator"}, spec.SupportedPlatforms)
	assert.Nil(t, spec.Toolchain)
	require.NotNil(t, spec.SDKSuffix)
	assert.Empty(t, *spec.SDKSuffix)
	assert.True(t, spec.Superimposed.MergeableLibrary)

	assert.Equal(t, []string{"org.swift.latest"}, specFor(tool, true).Toolchain)

	assert.Same(t, def, specFor(agg, true))
	opaque := specFor(agg, false)
	assert.Equal(t, resolver.SourceTarget, opaque.Source.Kind)
	assert.Equal(t, "macosx", opaque.Platform.Name)
}
