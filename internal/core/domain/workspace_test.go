package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tgraph/internal/core/domain"
)

func newTestWorkspace(t *testing.T) *domain.Workspace {
	t.Helper()
	ws := domain.NewWorkspace()
	app := &domain.Project{Name: "app"}
	kit := &domain.Project{Name: "kit"}
	ws.AddProject(app)
	ws.AddProject(kit)

	targets := []*domain.Target{
		{GUID: domain.TargetGUID("app", "App"), Name: "App", Project: app},
		{GUID: domain.TargetGUID("app", "Shared"), Name: "Shared", Project: app},
		{GUID: domain.TargetGUID("kit", "Shared"), Name: "Shared", Project: kit},
		{GUID: domain.TargetGUID("kit", "Kit"), Name: "Kit", Project: kit, DynamicVariantGUID: domain.TargetGUID("kit", "KitDynamic")},
		{GUID: domain.TargetGUID("kit", "KitDynamic"), Name: "KitDynamic", Project: kit},
		{GUID: domain.TargetGUID("kit", "Pkg"), Name: "Pkg", Project: kit, ProductType: domain.ProductTypePackageProduct},
	}
	for _, tgt := range targets {
		require.NoError(t, ws.AddTarget(tgt))
	}
	return ws
}

func TestWorkspace_AddTargetDuplicate(t *testing.T) {
	ws := newTestWorkspace(t)
	err := ws.AddTarget(&domain.Target{GUID: domain.TargetGUID("app", "App"), Name: "App"})
	require.ErrorContains(t, err, domain.ErrTargetAlreadyExists.Error())
}

func TestWorkspace_FindTarget(t *testing.T) {
	ws := newTestWorkspace(t)

	tests := []struct {
		ref     string
		want    string
		wantErr error
	}{
		{ref: "App", want: "app:App"},
		{ref: "kit:Shared", want: "kit:Shared"},
		{ref: "Shared", wantErr: domain.ErrAmbiguousTargetName},
		{ref: "Missing", wantErr: domain.ErrTargetNotFound},
		{ref: "kit:Missing", wantErr: domain.ErrTargetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ws.FindTarget(tt.ref)
			if tt.wantErr != nil {
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.GUID.String())
		})
	}
}

func TestWorkspace_DynamicTargetAndPackage(t *testing.T) {
	ws := newTestWorkspace(t)

	kit, _ := ws.Target(domain.TargetGUID("kit", "Kit"))
	app, _ := ws.Target(domain.TargetGUID("app", "App"))
	pkg, _ := ws.Target(domain.TargetGUID("kit", "Pkg"))

	assert.Equal(t, "KitDynamic", ws.DynamicTarget(kit).Name)
	assert.Same(t, app, ws.DynamicTarget(app))
	assert.True(t, ws.IsPackage(pkg))
	assert.False(t, ws.IsPackage(app))
	assert.Equal(t, "app", ws.ProjectFor(app).Name)
	assert.Len(t, ws.Targets(), 6)
}
