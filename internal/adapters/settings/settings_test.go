package settings_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tgraph/internal/adapters/settings"
	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
)

func newContext(t *testing.T, targetSettings map[string]string) (*settings.Context, *domain.Target) {
	t.Helper()
	ws := domain.NewWorkspace()
	ws.SetSettings(map[string]string{"CONFIGURATION_BUILD_DIR": "build", "LAYERED": "workspace"})
	project := &domain.Project{Name: "app", Settings: map[string]string{"LAYERED": "project"}}
	ws.AddProject(project)
	target := &domain.Target{
		GUID:     domain.TargetGUID("app", "T"),
		Name:     "T",
		Project:  project,
		Settings: targetSettings,
	}
	require.NoError(t, ws.AddTarget(target))
	return settings.NewContext(ws, domain.DefaultRegistry()), target
}

func params(platform, variant string) *domain.BuildParameters {
	p := &domain.BuildParameters{Action: domain.ActionBuild, Configuration: "Debug"}
	if platform != "" {
		p.ActiveRunDestination = &domain.RunDestination{Platform: platform, SDK: platform, SDKVariant: variant}
	}
	return p
}

func platformName(s ports.Settings) string {
	if s.Platform() == nil {
		return ""
	}
	return s.Platform().Name
}

func variantName(s ports.Settings) string {
	if s.SDKVariant() == nil {
		return ""
	}
	return s.SDKVariant().Name
}

func TestSettings_PlatformResolution(t *testing.T) {
	tests := []struct {
		name          string
		target        map[string]string
		params        *domain.BuildParameters
		wantPlatform  string
		wantVariant   string
		wantSupported []string
		wantSpecial   bool
	}{
		{
			name:          "default SDKROOT is the host platform",
			target:        nil,
			params:        params("", ""),
			wantPlatform:  "macosx",
			wantVariant:   "macos",
			wantSupported: []string{"macosx"},
		},
		{
			name:          "default SDKROOT is the first declared supported platform",
			target:        map[string]string{"SUPPORTED_PLATFORMS": "iphoneos appletvos"},
			params:        params("", ""),
			wantPlatform:  "iphoneos",
			wantSupported: []string{"iphoneos", "appletvos"},
		},
		{
			name:          "auto follows a supported run destination",
			target:        map[string]string{"SDKROOT": "auto", "SUPPORTED_PLATFORMS": "iphoneos iphonesimulator"},
			params:        params("iphonesimulator", ""),
			wantPlatform:  "iphonesimulator",
			wantSupported: []string{"iphoneos", "iphonesimulator"},
			wantSpecial:   true,
		},
		{
			name:          "auto falls back to the first supported platform",
			target:        map[string]string{"SDKROOT": "auto", "SUPPORTED_PLATFORMS": "appletvos iphoneos"},
			params:        params("macosx", "macos"),
			wantPlatform:  "appletvos",
			wantSupported: []string{"appletvos", "iphoneos"},
			wantSpecial:   true,
		},
		{
			name:          "fixed SDKROOT switches to simulator of the same family",
			target:        map[string]string{"SDKROOT": "iphoneos"},
			params:        params("iphonesimulator", ""),
			wantPlatform:  "iphonesimulator",
			wantSupported: []string{"iphoneos", "iphonesimulator"},
		},
		{
			name:          "fixed SDKROOT ignores an unrelated run destination",
			target:        map[string]string{"SDKROOT": "iphoneos"},
			params:        params("appletvsimulator", ""),
			wantPlatform:  "iphoneos",
			wantSupported: []string{"iphoneos", "iphonesimulator"},
		},
		{
			name:          "Mac Catalyst switches an iOS target to macOS",
			target:        map[string]string{"SDKROOT": "iphoneos", "SUPPORTS_MACCATALYST": "YES"},
			params:        params("macosx", "iosmac"),
			wantPlatform:  "macosx",
			wantVariant:   "iosmac",
			wantSupported: []string{"iphoneos", "iphonesimulator", "macosx"},
		},
		{
			name:          "Mac Catalyst run destination without opt-in keeps the default variant",
			target:        map[string]string{"SDKROOT": "macosx"},
			params:        params("macosx", "iosmac"),
			wantPlatform:  "macosx",
			wantVariant:   "macos",
			wantSupported: []string{"macosx"},
		},
		{
			name:          "imposed SDKROOT is not switched",
			target:        map[string]string{"SDKROOT": "auto"},
			params:        params("iphonesimulator", "").MergingOverrides(map[string]string{"SDKROOT": "iphoneos"}),
			wantPlatform:  "iphoneos",
			wantSupported: []string{"iphoneos", "iphonesimulator"},
		},
		{
			name:          "allow specialization flag",
			target:        map[string]string{"SDKROOT": "appletvos", "ALLOW_TARGET_PLATFORM_SPECIALIZATION": "YES"},
			params:        params("", ""),
			wantPlatform:  "appletvos",
			wantSupported: []string{"appletvos", "appletvsimulator"},
			wantSpecial:   true,
		},
		{
			name:          "unknown SDKROOT resolves to nothing",
			target:        map[string]string{"SDKROOT": "palmos"},
			params:        params("macosx", ""),
			wantPlatform:  "",
			wantSupported: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, target := newContext(t, tt.target)
			s := ctx.Settings(tt.params, target, ports.PurposeResolution)

			assert.Equal(t, tt.wantPlatform, platformName(s))
			assert.Equal(t, tt.wantVariant, variantName(s))
			assert.Equal(t, tt.wantSupported, s.SupportedPlatforms())
			assert.Equal(t, tt.wantSpecial, s.EnableTargetPlatformSpecialization())
		})
	}
}

func TestSettings_AutoWithoutSupportedPlatformsMeansAll(t *testing.T) {
	ctx, target := newContext(t, map[string]string{"SDKROOT": "auto"})
	s := ctx.Settings(params("xrsimulator", ""), target, ports.PurposeResolution)

	assert.Equal(t, "xrsimulator", platformName(s))
	assert.Len(t, s.SupportedPlatforms(), len(domain.DefaultRegistry().Platforms))
}

func TestSettings_Layers(t *testing.T) {
	ctx, target := newContext(t, map[string]string{"LAYERED": "target", "SDKROOT": "macosx"})
	p := params("", "")
	p.EnvironmentOverrides = map[string]string{"ENV_ONLY": "env", "BOTH": "env"}
	p.CommandLineOverrides = map[string]string{"BOTH": "cli"}

	s := ctx.Evaluated(p, target, ports.PurposeBuild)

	assert.Equal(t, "target", s.Value("LAYERED"))
	assert.Equal(t, settings.LayerTarget, s.Layer("LAYERED"))
	assert.Equal(t, "cli", s.Value("BOTH"))
	assert.Equal(t, settings.LayerCommandLine, s.Layer("BOTH"))
	assert.Equal(t, settings.LayerEnvironment, s.Layer("ENV_ONLY"))
	assert.Equal(t, "build", s.Value("CONFIGURATION_BUILD_DIR"))
	assert.Equal(t, "Debug", s.Value(domain.SettingConfiguration))
	assert.Equal(t, "macosx", s.Value(domain.SettingPlatformName))
	assert.Empty(t, s.Value(domain.SettingEffectivePlatformName))
	assert.Equal(t, settings.LayerUnset, s.Layer("NOPE"))

	workspace := ctx.Evaluated(p, nil, ports.PurposeBuild)
	assert.Equal(t, "workspace", workspace.Value("LAYERED"))
	assert.Equal(t, settings.LayerWorkspace, workspace.Layer("LAYERED"))

	bare, bareTarget := newContext(t, nil)
	project := bare.Evaluated(p, bareTarget, ports.PurposeBuild)
	assert.Equal(t, "project", project.Value("LAYERED"))
	assert.Equal(t, settings.LayerProject, project.Layer("LAYERED"))
}

func TestSettings_Toolchains(t *testing.T) {
	tests := []struct {
		name   string
		target map[string]string
		params *domain.BuildParameters
		want   []string
	}{
		{
			name:   "registry default",
			params: params("", ""),
			want:   []string{domain.DefaultToolchainIdentifier},
		},
		{
			name:   "target setting",
			target: map[string]string{"TOOLCHAINS": "org.swift.latest"},
			params: params("", ""),
			want:   []string{"org.swift.latest"},
		},
		{
			name:   "parameters toolchain beats target setting",
			target: map[string]string{"TOOLCHAINS": "org.swift.latest"},
			params: &domain.BuildParameters{Toolchain: "custom"},
			want:   []string{"custom"},
		},
		{
			name:   "imposed override beats parameters toolchain",
			params: (&domain.BuildParameters{Toolchain: "custom"}).MergingOverrides(map[string]string{"TOOLCHAINS": "a b"}),
			want:   []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, target := newContext(t, tt.target)
			assert.Equal(t, tt.want, ctx.Settings(tt.params, target, ports.PurposeBuild).Toolchains())
		})
	}
}

func TestContext_CacheIsReferentiallyStable(t *testing.T) {
	ctx, target := newContext(t, map[string]string{"SDKROOT": "auto"})

	var wg sync.WaitGroup
	results := make([]ports.Settings, 16)
	for i := range results {
		wg.Go(func() {
			// Equal parameters built independently hit the same entry.
			results[i] = ctx.Settings(params("iphoneos", ""), target, ports.PurposeResolution)
		})
	}
	wg.Wait()

	for _, s := range results {
		assert.Same(t, results[0], s)
	}
	assert.NotSame(t, results[0], ctx.Settings(params("iphoneos", ""), target, ports.PurposeBuild))
	assert.Equal(t, 2, ctx.Len())
}

func TestSettings_BuildRequestOverrides(t *testing.T) {
	ctx, target := newContext(t, map[string]string{"ALLOW_BUILD_REQUEST_OVERRIDES": "YES"})
	assert.True(t, ctx.Settings(params("", ""), target, ports.PurposeBuild).EnableBuildRequestOverrides())
}
