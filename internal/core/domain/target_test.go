package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tgraph/internal/core/domain"
)

func TestParseProductType(t *testing.T) {
	pt, err := domain.ParseProductType("")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductTypeFramework, pt)

	pt, err = domain.ParseProductType("host-build-tool")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductTypeHostBuildTool, pt)

	_, err = domain.ParseProductType("kext")
	require.ErrorContains(t, err, domain.ErrUnknownProductType.Error())
}

func TestTarget_Links(t *testing.T) {
	tests := []struct {
		name   string
		dep    *domain.Target
		linked []string
		want   bool
	}{
		{
			name:   "framework by path",
			dep:    &domain.Target{Name: "Core", ProductType: domain.ProductTypeFramework},
			linked: []string{"$(BUILT_PRODUCTS_DIR)/Core.framework"},
			want:   true,
		},
		{
			name:   "static library uses product name",
			dep:    &domain.Target{Name: "Util", ProductName: "utils", ProductType: domain.ProductTypeStaticLibrary},
			linked: []string{"libutils.a"},
			want:   true,
		},
		{
			name:   "not linked",
			dep:    &domain.Target{Name: "Core", ProductType: domain.ProductTypeFramework},
			linked: []string{"Other.framework"},
			want:   false,
		},
		{
			name: "no link phase",
			dep:  &domain.Target{Name: "Core", ProductType: domain.ProductTypeDynamicLibrary},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &domain.Target{Name: "App", LinkedProducts: tt.linked}
			assert.Equal(t, tt.want, target.Links(tt.dep))
		})
	}
}

func TestPlatformFilterContext_Matches(t *testing.T) {
	ios := domain.PlatformFilterContext{Platform: "ios"}
	sim := domain.PlatformFilterContext{Platform: "ios", Environment: "simulator"}
	filters := []domain.PlatformFilter{{Platform: "ios"}}

	assert.True(t, ios.Matches(nil))
	assert.True(t, ios.Matches(filters))
	assert.False(t, sim.Matches(filters))
	assert.True(t, sim.Matches([]domain.PlatformFilter{{Platform: "ios", Environment: "simulator"}}))
}
