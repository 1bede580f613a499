package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tgraph/internal/adapters/logger"
	"go.trai.ch/tgraph/internal/adapters/settings"
	"go.trai.ch/tgraph/internal/app"
	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const workDir = "/work/app"

type harness struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	store    *mocks.MockPlanStore
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
	out      *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		loader:   mocks.NewMockConfigLoader(ctrl),
		store:    mocks.NewMockPlanStore(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		out:      &bytes.Buffer{},
	}
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.app = app.New(h.loader, h.logger, h.store, h.renderer, settings.Factory{}, nil).
		WithOutput(h.out).
		WithWorkingDir(workDir)
	return h
}

// newWorkspace returns a macOS application App linking the framework Kit.
func newWorkspace(t *testing.T) *domain.Workspace {
	t.Helper()
	ws := domain.NewWorkspace()
	ws.SetRoot("/work")
	project := &domain.Project{Name: "app", Dir: workDir}
	ws.AddProject(project)

	require.NoError(t, ws.AddTarget(&domain.Target{
		GUID:        domain.TargetGUID("app", "App"),
		Name:        "App",
		Project:     project,
		ProductType: domain.ProductTypeApplication,
		Settings:    map[string]string{"SUPPORTED_PLATFORMS": "macosx"},
		Dependencies: []domain.TargetDependency{
			{GUID: domain.TargetGUID("app", "Kit"), Name: "Kit"},
		},
	}))
	require.NoError(t, ws.AddTarget(&domain.Target{
		GUID:        domain.TargetGUID("app", "Kit"),
		Name:        "Kit",
		Project:     project,
		ProductType: domain.ProductTypeFramework,
		Settings:    map[string]string{"SDKROOT": "auto"},
	}))
	return ws
}

func capturePlan(plan **domain.Plan) func(io.Writer, *domain.Plan, domain.OutputFormat) error {
	return func(_ io.Writer, p *domain.Plan, _ domain.OutputFormat) error {
		*plan = p
		return nil
	}
}

func TestApp_Resolve(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(workDir).Return(newWorkspace(t), domain.DefaultRegistry(), nil)

	var plan *domain.Plan
	h.renderer.EXPECT().RenderPlan(h.out, gomock.Any(), domain.FormatText).DoAndReturn(capturePlan(&plan))

	err := h.app.Resolve(context.Background(), []string{"App"}, app.ResolveOptions{})
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Len(t, plan.Digest, 16)
	assert.Equal(t, domain.ActionBuild, plan.Action)
	assert.Equal(t, app.DefaultConfiguration, plan.Configuration)
	assert.Equal(t, &domain.RunDestination{Platform: "macosx", SDK: "macosx", SDKVariant: "macos"}, plan.RunDestination)
	assert.False(t, plan.HasErrors())

	require.Len(t, plan.Targets, 2)
	kit, top := plan.Targets[0], plan.Targets[1]
	assert.Equal(t, "Kit", kit.Target)
	assert.Equal(t, "app", kit.Project)
	assert.Equal(t, "macosx", kit.Platform)
	assert.Equal(t, "macosx", kit.SDK)
	assert.Equal(t, "macos", kit.SDKVariant)
	assert.False(t, kit.TopLevel)

	assert.Equal(t, "App", top.Target)
	assert.True(t, top.TopLevel)
	assert.Equal(t, []string{kit.GUID}, top.Dependencies)
}

func TestApp_Resolve_Save(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(workDir).Return(newWorkspace(t), domain.DefaultRegistry(), nil)

	var stored *domain.Plan
	h.store.EXPECT().Put("/work", gomock.Any()).DoAndReturn(func(_ string, p *domain.Plan) error {
		stored = p
		return nil
	})
	h.logger.EXPECT().Info(gomock.Any()).Times(1)
	h.renderer.EXPECT().RenderPlan(h.out, gomock.Any(), domain.FormatJSON).Return(nil)

	err := h.app.Resolve(context.Background(), []string{"app:App"}, app.ResolveOptions{
		Format: "json",
		Save:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Targets, 2)
}

func TestApp_Resolve_SameRequestSameDigest(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(workDir).Return(newWorkspace(t), domain.DefaultRegistry(), nil).Times(3)

	var first, second, other *domain.Plan
	gomock.InOrder(
		h.renderer.EXPECT().RenderPlan(h.out, gomock.Any(), domain.FormatText).DoAndReturn(capturePlan(&first)),
		h.renderer.EXPECT().RenderPlan(h.out, gomock.Any(), domain.FormatText).DoAndReturn(capturePlan(&second)),
		h.renderer.EXPECT().RenderPlan(h.out, gomock.Any(), domain.FormatText).DoAndReturn(capturePlan(&other)),
	)

	opts := app.ResolveOptions{Overrides: []string{"OTHER_FLAGS=-v"}}
	require.NoError(t, h.app.Resolve(context.Background(), []string{"App"}, opts))
	require.NoError(t, h.app.Resolve(context.Background(), []string{"App"}, opts))
	require.NoError(t, h.app.Resolve(context.Background(), []string{"App"}, app.ResolveOptions{Configuration: "Release"}))

	assert.Equal(t, first.Digest, second.Digest)
	assert.NotEqual(t, first.Digest, other.Digest)
	assert.Equal(t, "Release", other.Configuration)
}

func TestApp_Resolve_ErrorDiagnostics(t *testing.T) {
	h := newHarness(t)
	ws := domain.NewWorkspace()
	project := &domain.Project{Name: "app"}
	ws.AddProject(project)
	require.NoError(t, ws.AddTarget(&domain.Target{
		GUID:         domain.TargetGUID("app", "A"),
		Name:         "A",
		Project:      project,
		ProductType:  domain.ProductTypeApplication,
		Settings:     map[string]string{"SDKROOT": "macosx"},
		Dependencies: []domain.TargetDependency{{GUID: domain.TargetGUID("app", "D"), Name: "D"}},
	}))
	require.NoError(t, ws.AddTarget(&domain.Target{
		GUID:        domain.TargetGUID("app", "D"),
		Name:        "D",
		Project:     project,
		ProductType: domain.ProductTypeFramework,
		Settings: map[string]string{
			"SDKROOT":             "iphoneos",
			"SUPPORTED_PLATFORMS": "iphoneos appletvos",
		},
	}))
	h.loader.EXPECT().Load(workDir).Return(ws, domain.DefaultRegistry(), nil)

	var plan *domain.Plan
	h.renderer.EXPECT().RenderPlan(h.out, gomock.Any(), domain.FormatText).DoAndReturn(capturePlan(&plan))

	err := h.app.Resolve(context.Background(), []string{"A"}, app.ResolveOptions{
		Platform:               "appletvsimulator",
		StrictPlatformFallback: true,
	})
	require.True(t, errors.Is(err, domain.ErrResolutionFailed))
	require.NotNil(t, plan)
	assert.True(t, plan.HasErrors())
}

func TestApp_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		opts    app.ResolveOptions
		wantErr error
	}{
		{name: "no targets", wantErr: domain.ErrNoTargetsSpecified},
		{name: "unknown target", targets: []string{"Missing"}, wantErr: domain.ErrTargetNotFound},
		{name: "unknown platform", targets: []string{"App"}, opts: app.ResolveOptions{Platform: "palmos"}, wantErr: domain.ErrUnknownPlatform},
		{
			name:    "unknown variant",
			targets: []string{"App"},
			opts:    app.ResolveOptions{Platform: "macosx", SDKVariant: "linux"},
			wantErr: domain.ErrUnknownSDKVariant,
		},
		{name: "invalid override", targets: []string{"App"}, opts: app.ResolveOptions{Overrides: []string{"NOVALUE"}}, wantErr: domain.ErrInvalidOverride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.loader.EXPECT().Load(workDir).Return(newWorkspace(t), domain.DefaultRegistry(), nil)

			err := h.app.Resolve(context.Background(), tt.targets, tt.opts)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestApp_Resolve_UnknownFormat(t *testing.T) {
	h := newHarness(t)

	err := h.app.Resolve(context.Background(), []string{"App"}, app.ResolveOptions{Format: "yaml"})
	require.ErrorContains(t, err, domain.ErrUnknownOutputFormat.Error())
}

func TestApp_Resolve_LoadFailed(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(workDir).Return(nil, nil, domain.ErrConfigNotFound)

	err := h.app.Resolve(context.Background(), []string{"App"}, app.ResolveOptions{})
	require.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Resolve_Canceled(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(workDir).Return(newWorkspace(t), domain.DefaultRegistry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.app.Resolve(ctx, []string{"App"}, app.ResolveOptions{})
	require.ErrorContains(t, err, domain.ErrResolutionCanceled.Error())
}

func TestApp_Platforms(t *testing.T) {
	h := newHarness(t)
	reg := domain.DefaultRegistry()
	h.loader.EXPECT().Load(workDir).Return(newWorkspace(t), reg, nil)
	h.renderer.EXPECT().RenderPlatforms(h.out, reg, domain.FormatJSON).Return(nil)

	require.NoError(t, h.app.Platforms(context.Background(), "json"))
}

func TestApp_Show(t *testing.T) {
	h := newHarness(t)
	plan := &domain.Plan{Digest: "0123456789abcdef", Action: domain.ActionBuild}
	h.loader.EXPECT().DiscoverRoot(workDir).Return("/work", nil)
	h.store.EXPECT().Get("/work", plan.Digest).Return(plan, nil)
	h.renderer.EXPECT().RenderPlan(h.out, plan, domain.FormatText).Return(nil)

	require.NoError(t, h.app.Show(context.Background(), plan.Digest, ""))
}

func TestApp_Show_NotFound(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().DiscoverRoot(workDir).Return("/work", nil)
	h.store.EXPECT().Get("/work", "missing").Return(nil, nil)

	err := h.app.Show(context.Background(), "missing", "")
	require.ErrorContains(t, err, domain.ErrPlanNotFound.Error())
}

func TestApp_Clean(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().DiscoverRoot(workDir).Return("/work", nil)
	h.store.EXPECT().Clean("/work").Return(nil)
	gomock.InOrder(
		h.logger.EXPECT().Info("removing plan store..."),
		h.logger.EXPECT().Info("removed plan store"),
	)

	require.NoError(t, h.app.Clean(context.Background()))
}

func TestApp_Clean_Failed(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().DiscoverRoot(workDir).Return("/work", nil)
	h.logger.EXPECT().Info("removing plan store...")
	h.store.EXPECT().Clean("/work").Return(errors.New("permission denied"))

	err := h.app.Clean(context.Background())
	require.ErrorContains(t, err, "failed to remove plan store")
}

func TestApp_SetVerbose(t *testing.T) {
	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	a := app.New(nil, log, nil, nil, settings.Factory{}, nil)
	log.Debug("hidden")
	a.SetVerbose(true)
	log.Debug("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
