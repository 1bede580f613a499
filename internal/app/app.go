// Package app implements the application layer for tgraph.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
	"go.trai.ch/tgraph/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// DefaultConfiguration is the build configuration used when none is requested.
const DefaultConfiguration = "Debug"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.PlanStore
	renderer     ports.Renderer
	contexts     ports.WorkspaceContextFactory
	tracer       ports.Tracer
	out          io.Writer
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.PlanStore,
	renderer ports.Renderer,
	contexts ports.WorkspaceContextFactory,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		renderer:     renderer,
		contexts:     contexts,
		tracer:       tracer,
		out:          os.Stdout,
		getwd:        os.Getwd,
	}
}

// WithOutput sets the writer plans and registries are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkingDir pins the directory configuration discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// SetVerbose enables debug output when the logger supports it.
func (a *App) SetVerbose(enable bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(enable)
	}
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// Platform is the run destination platform. Empty selects the host platform.
	Platform   string
	SDKVariant string
	Arch       string
	// Configuration defaults to DefaultConfiguration.
	Configuration string
	Index         bool
	Toolchain     string
	// Overrides are KEY=VALUE command-line build setting overrides.
	Overrides []string
	// EnvOverrides are KEY=VALUE overrides applied at the environment layer.
	EnvOverrides []string

	Jobs                   int
	Sequential             bool
	StrictPlatformFallback bool
	OpaqueAggregates       bool

	Format string
	Save   bool
}

// Resolve builds the configured target graph of the named targets and renders it.
// Returns domain.ErrResolutionFailed, unwrapped, when the graph carries error diagnostics.
//
//nolint:cyclop // orchestration function
func (a *App) Resolve(ctx context.Context, targetNames []string, opts ResolveOptions) error {
	format, err := domain.ParseOutputFormat(opts.Format)
	if err != nil {
		return err
	}

	// 1. Load the workspace
	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}
	ws, reg, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Validate targets
	if len(targetNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}
	targets := make([]*domain.Target, 0, len(targetNames))
	for _, name := range targetNames {
		target, err := ws.FindTarget(name)
		if err != nil {
			return err
		}
		targets = append(targets, target)
	}

	// 3. Build the request
	params, err := buildParameters(reg, opts)
	if err != nil {
		return err
	}
	request := domain.NewBuildRequest(params, targets, opts.Index)

	// 4. Resolve
	wc := a.contexts.New(ws, reg)
	diagnostics := domain.NewDiagnosticLog()
	r := resolver.New(wc, request, diagnostics, a.logger, a.tracer, resolver.Options{
		MaxParallelism:         opts.Jobs,
		Sequential:             opts.Sequential,
		StrictPlatformFallback: opts.StrictPlatformFallback,
		OpaqueAggregates:       opts.OpaqueAggregates,
	})
	graph := r.Resolve(ctx)
	if ctx.Err() != nil {
		return zerr.Wrap(ctx.Err(), domain.ErrResolutionCanceled.Error())
	}

	plan := newPlan(wc, request, graph, diagnostics)

	// 5. Persist and present
	if opts.Save {
		if err := a.store.Put(ws.Root(), plan); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("saved plan %s", plan.Digest))
	}
	if err := a.renderer.RenderPlan(a.out, plan, format); err != nil {
		return zerr.Wrap(err, "failed to render plan")
	}

	if plan.HasErrors() {
		return domain.ErrResolutionFailed
	}
	return nil
}

// Platforms renders the platform registry of the workspace.
func (a *App) Platforms(_ context.Context, formatName string) error {
	format, err := domain.ParseOutputFormat(formatName)
	if err != nil {
		return err
	}
	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}
	_, reg, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := a.renderer.RenderPlatforms(a.out, reg, format); err != nil {
		return zerr.Wrap(err, "failed to render platforms")
	}
	return nil
}

// Show renders a plan saved by an earlier resolve.
func (a *App) Show(_ context.Context, digest, formatName string) error {
	format, err := domain.ParseOutputFormat(formatName)
	if err != nil {
		return err
	}
	root, err := a.root()
	if err != nil {
		return err
	}
	plan, err := a.store.Get(root, digest)
	if err != nil {
		return err
	}
	if plan == nil {
		return zerr.With(domain.ErrPlanNotFound, "digest", digest)
	}
	if err := a.renderer.RenderPlan(a.out, plan, format); err != nil {
		return zerr.Wrap(err, "failed to render plan")
	}
	return nil
}

// Clean removes every saved plan of the workspace.
func (a *App) Clean(_ context.Context) error {
	root, err := a.root()
	if err != nil {
		return err
	}
	a.logger.Info("removing plan store...")
	if err := a.store.Clean(root); err != nil {
		return zerr.Wrap(err, "failed to remove plan store")
	}
	a.logger.Info("removed plan store")
	return nil
}

func (a *App) root() (string, error) {
	cwd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	root, err := a.configLoader.DiscoverRoot(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to find workspace root")
	}
	return root, nil
}
