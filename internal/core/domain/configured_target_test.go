package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tgraph/internal/core/domain"
)

func TestConfiguredTarget_GUID(t *testing.T) {
	target := &domain.Target{GUID: domain.TargetGUID("p", "C"), Name: "C"}
	base := &domain.BuildParameters{
		Action:               domain.ActionIndexBuild,
		ActiveRunDestination: &domain.RunDestination{Platform: "iphoneos", SDK: "iphoneos"},
	}

	tests := []struct {
		name       string
		params     *domain.BuildParameters
		specialize bool
		want       string
	}{
		{
			name:   "no interesting overrides",
			params: base.MergingOverrides(map[string]string{"OTHER": "1"}),
			want:   "p:C",
		},
		{
			name:   "sdkroot and variant",
			params: base.MergingOverrides(map[string]string{domain.SettingSDKRoot: "macosx", domain.SettingSDKVariant: "iosmac"}),
			want:   "p:C-SDKROOT=macosx-SDK_VARIANT=iosmac",
		},
		{
			name:       "run destination",
			params:     base.MergingOverrides(map[string]string{domain.SettingSDKRoot: "iphoneos"}),
			specialize: true,
			want:       "p:C-SDKROOT=iphoneos-dest=iphoneos/iphoneos/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := domain.NewConfiguredTarget(target, tt.params, tt.specialize)
			assert.Equal(t, tt.want, ct.GUID())
			assert.Equal(t, tt.want, domain.NewConfiguredTarget(target, tt.params, tt.specialize).GUID())
		})
	}
}

func TestConfiguredTarget_Equal(t *testing.T) {
	target := &domain.Target{GUID: domain.TargetGUID("p", "C"), Name: "C"}
	p1 := &domain.BuildParameters{Configuration: "Debug", Overrides: map[string]string{"A": "1"}}
	p2 := &domain.BuildParameters{Configuration: "Debug", Overrides: map[string]string{"A": "1"}}

	a := domain.NewConfiguredTarget(target, p1, false)
	b := domain.NewConfiguredTarget(target, p2, false)
	c := domain.NewConfiguredTarget(target, p2, true)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
