package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tgraph/internal/core/domain"
)

func TestDefaultRegistry(t *testing.T) {
	r := domain.DefaultRegistry()
	require.NoError(t, r.Validate())

	host, ok := r.Host()
	require.True(t, ok)
	assert.Equal(t, "macosx", host.Name)

	sdk, ok := r.SDKFor("iphoneos", domain.InternalSDKSuffix)
	require.True(t, ok)
	assert.Equal(t, "iphoneos.internal", sdk.CanonicalName)

	v := r.DefaultVariant(host)
	require.NotNil(t, v)
	assert.Equal(t, "macos", v.Name)

	tc, ok := r.Toolchain("default")
	require.True(t, ok)
	assert.Equal(t, domain.DefaultToolchainIdentifier, tc.Identifier)
}

func TestRegistry_ResolveSDK(t *testing.T) {
	r := domain.DefaultRegistry()

	tests := []struct {
		value string
		want  string
		ok    bool
	}{
		{"iphoneos", "iphoneos", true},
		{"iphoneos.internal", "iphoneos.internal", true},
		{" macosx ", "macosx", true},
		{"auto", "", false},
		{"", "", false},
		{"palmos", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			sdk, ok := r.ResolveSDK(tt.value)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, sdk.CanonicalName)
			}
		})
	}
}

func TestRegistry_FilterContext(t *testing.T) {
	r := domain.DefaultRegistry()
	mac, _ := r.Platform("macosx")
	sim, _ := r.Platform("iphonesimulator")
	sdk, _ := r.SDKFor("macosx", "")
	catalyst, _ := sdk.Variant(domain.MacCatalystVariantName)

	assert.Equal(t, domain.PlatformFilterContext{Platform: "macos"}, r.FilterContext(mac, nil))
	assert.Equal(t, domain.PlatformFilterContext{Platform: "ios", Environment: "simulator"}, r.FilterContext(sim, nil))
	assert.Equal(t, domain.PlatformFilterContext{Platform: "ios", Environment: "maccatalyst"}, r.FilterContext(mac, catalyst))
	assert.Equal(t, domain.PlatformFilterContext{}, r.FilterContext(nil, nil))
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		reg     *domain.Registry
		wantErr error
	}{
		{
			name: "duplicate platform",
			reg: &domain.Registry{Platforms: []*domain.Platform{
				{Name: "macosx"}, {Name: "macosx"},
			}},
			wantErr: domain.ErrInvalidRegistry,
		},
		{
			name: "sdk for unknown platform",
			reg: &domain.Registry{
				Platforms: []*domain.Platform{{Name: "macosx"}},
				SDKs:      []*domain.SDK{{CanonicalName: "iphoneos", Platform: "iphoneos"}},
			},
			wantErr: domain.ErrUnknownPlatform,
		},
		{
			name: "unknown default variant",
			reg: &domain.Registry{
				Platforms: []*domain.Platform{{Name: "macosx", DefaultSDKVariant: "nope"}},
				SDKs:      []*domain.SDK{{CanonicalName: "macosx", Platform: "macosx"}},
			},
			wantErr: domain.ErrUnknownSDKVariant,
		},
		{
			name: "unknown host",
			reg: &domain.Registry{
				Platforms:    []*domain.Platform{{Name: "macosx"}},
				HostPlatform: "linux",
			},
			wantErr: domain.ErrUnknownPlatform,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, tt.reg.Validate(), tt.wantErr.Error())
		})
	}
}
