// Package resolver computes the configured target graph of a build request: it specializes every
// dependency relative to its dependent, reuses compatible configurations and reports conflicts.
package resolver

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Options tune a resolution.
type Options struct {
	// MaxParallelism bounds concurrent settings evaluation. Zero means GOMAXPROCS.
	MaxParallelism int
	// Sequential disables concurrent evaluation. The result is identical either way.
	Sequential bool
	// StrictPlatformFallback turns the ambiguous platform warning into an error outside index builds.
	StrictPlatformFallback bool
	// OpaqueAggregates makes aggregate targets impose their own specialization on dependencies.
	OpaqueAggregates bool
}

// Resolver resolves one build request. It owns its caches; create a new Resolver per request.
type Resolver struct {
	wc       ports.WorkspaceContext
	request  *domain.BuildRequest
	delegate ports.DiagnosticsDelegate
	logger   ports.Logger
	tracer   ports.Tracer
	opts     Options

	workspaceDefault *Specialization
	index            []indexPlatform
	host             *indexPlatform

	mu           sync.Mutex
	configured   map[string]*domain.ConfiguredTarget
	byTarget     map[*domain.Target][]*domain.ConfiguredTarget
	superimposed map[*domain.Target]domain.SuperimposedProperties
}

// New creates a Resolver for request. A nil tracer disables tracing.
func New(
	wc ports.WorkspaceContext,
	request *domain.BuildRequest,
	delegate ports.DiagnosticsDelegate,
	logger ports.Logger,
	tracer ports.Tracer,
	opts Options,
) *Resolver {
	if tracer == nil {
		tracer = noopTracer{}
	}
	r := &Resolver{
		wc:           wc,
		request:      request,
		delegate:     delegate,
		logger:       logger,
		tracer:       tracer,
		opts:         opts,
		configured:   make(map[string]*domain.ConfiguredTarget),
		byTarget:     make(map[*domain.Target][]*domain.ConfiguredTarget),
		superimposed: make(map[*domain.Target]domain.SuperimposedProperties),
	}

	def := DefaultSpecialization(wc.Registry(), request.Parameters)
	for _, d := range def.Diagnostics {
		delegate.Emit(d)
	}
	r.workspaceDefault = def.WithoutDiagnostics()

	if request.IsIndexBuild() {
		r.index, r.host = indexPlatforms(wc.Registry())
	}
	return r
}

// WorkspaceDefault returns the specialization top-level targets are configured with.
func (r *Resolver) WorkspaceDefault() *Specialization {
	return r.workspaceDefault
}

func (r *Resolver) maxParallelism() int {
	if r.opts.MaxParallelism > 0 {
		return r.opts.MaxParallelism
	}
	return runtime.GOMAXPROCS(0)
}

// Resolve configures every requested target and, transitively, its dependencies.
// A canceled context yields an empty graph.
func (r *Resolver) Resolve(ctx context.Context) *domain.TargetGraph {
	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()

	if ctx.Err() != nil {
		return domain.NewTargetGraph()
	}

	graph := domain.NewTargetGraph()
	seen := make(map[*domain.ConfiguredTarget]bool)
	var level []*domain.ConfiguredTarget

	topCtx, topSpan := r.tracer.Start(ctx, "resolve.toplevel")
	for _, entry := range r.request.Targets {
		if topCtx.Err() != nil {
			topSpan.End()
			return domain.NewTargetGraph()
		}
		for _, ct := range r.LookupTopLevel(topCtx, entry) {
			graph.AddTarget(ct, true)
			if !seen[ct] {
				seen[ct] = true
				level = append(level, ct)
			}
		}
	}
	topSpan.SetAttribute("targets", len(level))
	topSpan.End()

	for depth := 0; len(level) > 0; depth++ {
		next, ok := r.resolveLevel(ctx, graph, level, seen, depth)
		if !ok {
			return domain.NewTargetGraph()
		}
		level = next
	}

	r.checkAggregates(graph)

	r.mu.Lock()
	for t, props := range r.superimposed {
		graph.Superimpose(t, props)
	}
	r.mu.Unlock()

	if err := graph.Validate(); err != nil {
		span.RecordError(err)
		r.delegate.Error(err.Error())
	}
	span.SetAttribute("configured_targets", graph.Len())
	r.logger.Debug(fmt.Sprintf("resolved %d configured targets", graph.Len()))
	return graph
}

// resolveLevel resolves the dependencies of one breadth-first level and returns the configured
// targets first discovered there. Settings are evaluated concurrently; registry updates happen
// afterwards in level order so the outcome does not depend on scheduling.
func (r *Resolver) resolveLevel(
	ctx context.Context,
	graph *domain.TargetGraph,
	level []*domain.ConfiguredTarget,
	seen map[*domain.ConfiguredTarget]bool,
	depth int,
) ([]*domain.ConfiguredTarget, bool) {
	ctx, span := r.tracer.Start(ctx, "resolve.level")
	defer span.End()
	span.SetAttribute("depth", depth)
	span.SetAttribute("targets", len(level))

	pending, err := r.collect(ctx, level)
	if err != nil {
		return nil, false
	}

	var next []*domain.ConfiguredTarget
	for i, ct := range level {
		if ctx.Err() != nil {
			return nil, false
		}
		deps := r.resolveEdges(ct, pending[i])
		graph.SetDependencies(ct, deps)
		for _, dep := range deps {
			graph.AddTarget(dep, false)
			if !seen[dep] {
				seen[dep] = true
				next = append(next, dep)
			}
		}
	}
	return next, true
}

type edge struct {
	dependency *domain.Target
	spec       *Specialization
}

type pendingEdges struct {
	edges   []edge
	skipped []string
}

// collect computes the outgoing edges of every configured target in level.
func (r *Resolver) collect(ctx context.Context, level []*domain.ConfiguredTarget) ([]pendingEdges, error) {
	out := make([]pendingEdges, len(level))

	if r.opts.Sequential {
		for i, ct := range level {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = r.pendingEdges(ct)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxParallelism())
	for i, ct := range level {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = r.pendingEdges(ct)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resolver) pendingEdges(ct *domain.ConfiguredTarget) pendingEdges {
	s := r.wc.Settings(ct.Parameters(), ct.Target(), ports.PurposeBuild)
	spec := SpecializationFrom(ct, s, r.wc.Registry(), r.request, r.workspaceDefault, !r.opts.OpaqueAggregates)

	deps, skipped := r.explicitDependencies(ct, s)
	p := pendingEdges{skipped: skipped}
	for _, dep := range deps {
		p.edges = append(p.edges, edge{dependency: dep, spec: spec.EffectiveProperties(ct.Target(), dep)})
	}
	return p
}

func (r *Resolver) resolveEdges(ct *domain.ConfiguredTarget, p pendingEdges) []*domain.ConfiguredTarget {
	for _, msg := range p.skipped {
		r.logger.Debug(msg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var deps []*domain.ConfiguredTarget
	for _, e := range p.edges {
		dep := r.lookup(e.dependency, ct.Parameters(), e.spec, false, ct.SpecializeGUIDForActiveRunDestination())
		if !slices.Contains(deps, dep) {
			deps = append(deps, dep)
		}
	}
	return deps
}

// LookupTopLevel configures a requested target. Normal builds yield exactly one configured
// target; index builds yield one per suitable platform, and none for aggregates.
func (r *Resolver) LookupTopLevel(ctx context.Context, entry domain.BuildRequestEntry) []*domain.ConfiguredTarget {
	if ctx.Err() != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := entry.Target
	if !r.request.IsIndexBuild() || r.wc.Workspace().IsPackage(t) {
		return []*domain.ConfiguredTarget{r.lookup(t, entry.Parameters, r.workspaceDefault, true, false)}
	}
	if t.IsAggregate() {
		return nil
	}

	var out []*domain.ConfiguredTarget
	for _, ip := range r.index {
		if ctx.Err() != nil {
			return nil
		}
		params := entry.Parameters.ReplacingActiveRunDestination(ip.runDestination, entry.Parameters.ActiveArchitecture)
		own := r.wc.Settings(params.WithoutOverrides(), t, ports.PurposeResolution)
		if !slices.Contains(own.SupportedPlatforms(), ip.platform.Name) {
			continue
		}
		if !r.isTargetSuitableForPlatformForIndex(t, params, ip) {
			continue
		}
		ct := r.lookup(t, params, ip.spec, true, true)
		if !slices.Contains(out, ct) {
			out = append(out, ct)
		}
	}
	return out
}

// Lookup configures target as a dependency requested with spec under parameters.
func (r *Resolver) Lookup(
	ctx context.Context,
	target *domain.Target,
	parameters *domain.BuildParameters,
	spec *Specialization,
) *domain.ConfiguredTarget {
	if ctx.Err() != nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(target, parameters, spec, false, false)
}

// SuperimposedProperties returns what has been superimposed on target so far.
func (r *Resolver) SuperimposedProperties(target *domain.Target) domain.SuperimposedProperties {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.superimposed[target]
}

// lookup finds or creates the configured target for target under parameters specialized by spec.
// The caller holds r.mu.
func (r *Resolver) lookup(
	target *domain.Target,
	parameters *domain.BuildParameters,
	spec *Specialization,
	topLevel bool,
	specializeGUID bool,
) *domain.ConfiguredTarget {
	if spec == nil {
		return r.intern(target, parameters, specializeGUID)
	}

	if r.request.IsIndexBuild() && target.IsHostBuildTool() && r.host != nil {
		parameters = r.request.Parameters.ReplacingActiveRunDestination(
			r.host.runDestination, r.request.Parameters.ActiveArchitecture)
		spec = r.host.spec
	}

	// Top-level requests are never satisfied by configurations created for other dependents.
	if !topLevel {
		if ct := r.findCompatible(target, spec, specializeGUID); ct != nil {
			r.superimpose(target, spec.Superimposed)
			return ct
		}
	}

	own := r.wc.Settings(parameters.WithoutOverrides(), target, ports.PurposeResolution)
	final := r.specialize(target, own, parameters, spec)

	base := parameters
	if !own.EnableTargetPlatformSpecialization() &&
		!own.EnableBuildRequestOverrides() &&
		!r.wc.Workspace().IsPackage(target) {
		base = parameters.WithoutImposedOverrides(r.request.Parameters)
	}

	ct := r.create(target, final.Imposed(base, r.wc.Registry()), specializeGUID)
	r.superimpose(target, final.Superimposed)
	return ct
}

func (r *Resolver) findCompatible(target *domain.Target, spec *Specialization, specializeGUID bool) *domain.ConfiguredTarget {
	for _, ct := range r.byTarget[target] {
		if ct.SpecializeGUIDForActiveRunDestination() != specializeGUID {
			continue
		}
		if spec.IsCompatible(r.wc.Settings(ct.Parameters(), target, ports.PurposeBuild)) {
			return ct
		}
	}
	return nil
}

// specialize decides the platform, SDK variant, SDK suffix and toolchain target is built with
// when spec is requested, in that order.
func (r *Resolver) specialize(
	target *domain.Target,
	own ports.Settings,
	parameters *domain.BuildParameters,
	spec *Specialization,
) *Specialization {
	reg := r.wc.Registry()
	ownSupported := own.SupportedPlatforms()
	requested := spec.Platform
	platform := requested
	specialized := false

	if requested != nil {
		switch {
		case r.acceptsPlatform(own, ownSupported, requested, spec):
			specialized = true
		default:
			platform = r.fallbackPlatform(target, own, parameters, requested)
		}
	}

	var variant *domain.SDKVariant
	if platform != nil {
		switch {
		case target.IsHostBuildTool():
			variant = reg.DefaultVariant(platform)
		case specialized && spec.SDKVariant != nil:
			if sdk, ok := reg.SDKFor(platform.Name, ""); ok {
				variant, _ = sdk.Variant(spec.SDKVariant.Name)
			}
		}
	}

	suffix := r.sdkSuffix(target, own, spec)

	toolchain := spec.Toolchain
	if toolchain != nil && slices.Equal(toolchain, own.Toolchains()) {
		toolchain = nil
	}

	var supported []string
	if specialized && len(spec.SupportedPlatforms) > 0 {
		for _, name := range ownSupported {
			if slices.Contains(spec.SupportedPlatforms, name) {
				supported = append(supported, name)
			}
		}
	}

	return &Specialization{
		Source:             spec.Source,
		Platform:           platform,
		SDKVariant:         variant,
		SupportedPlatforms: supported,
		Toolchain:          toolchain,
		SDKSuffix:          suffix,
		Superimposed:       spec.Superimposed,
	}
}

// acceptsPlatform reports whether the target can be built for the requested platform as is:
// it opts into specialization and supports the platform, or the platform is its own or its
// counterpart in the same family.
func (r *Resolver) acceptsPlatform(
	own ports.Settings,
	ownSupported []string,
	requested *domain.Platform,
	spec *Specialization,
) bool {
	if !slices.Contains(ownSupported, requested.Name) {
		return false
	}
	ownPlatform := own.Platform()
	if ownPlatform != nil && ownPlatform.Name == requested.Name {
		return true
	}
	if own.EnableTargetPlatformSpecialization() {
		if len(spec.SupportedPlatforms) == 0 {
			return true
		}
		return slices.ContainsFunc(spec.SupportedPlatforms, func(p string) bool {
			return slices.Contains(ownSupported, p)
		})
	}
	return ownPlatform != nil && ownPlatform.FamilyName == requested.FamilyName
}

// fallbackPlatform picks a platform for a target that cannot be built for requested. The order is
// fixed: the only non-simulator supported platform, then the run destination, then the host.
// Anything else is ambiguous: it is reported and resolved to the first supported platform.
func (r *Resolver) fallbackPlatform(
	target *domain.Target,
	own ports.Settings,
	parameters *domain.BuildParameters,
	requested *domain.Platform,
) *domain.Platform {
	reg := r.wc.Registry()
	supported := own.SupportedPlatforms()

	var devices []*domain.Platform
	for _, name := range supported {
		if p, ok := reg.Platform(name); ok && !p.IsSimulator {
			devices = append(devices, p)
		}
	}
	if len(devices) == 1 {
		return devices[0]
	}

	if rd := parameters.ActiveRunDestination; rd != nil && slices.Contains(supported, rd.Platform) {
		if p, ok := reg.Platform(rd.Platform); ok {
			return p
		}
	}

	if host, ok := reg.Host(); ok && slices.Contains(supported, host.Name) {
		return host
	}

	chosen := requested
	for _, name := range supported {
		if p, ok := reg.Platform(name); ok {
			chosen = p
			break
		}
	}

	msg := fmt.Sprintf(
		"unable to determine a platform for target '%s': '%s' is not supported and none of %s "+
			"is the only device platform, the run destination or the host; using '%s'",
		target.Name, requested.Name, quoteList(supported), chosen.Name)
	if r.opts.StrictPlatformFallback && !r.request.IsIndexBuild() {
		r.delegate.Error(msg)
	} else {
		r.delegate.Warning(msg)
	}
	return chosen
}

// sdkSuffix applies SPECIALIZATION_SDK_OPTIONS to the requested suffix.
func (r *Resolver) sdkSuffix(target *domain.Target, own ports.Settings, spec *Specialization) *string {
	suffix := spec.SDKSuffix
	options := slices.Compact(slices.Sorted(slices.Values(strings.Fields(own.Value(domain.SettingSpecializationSDKOptions)))))

	switch {
	case len(options) > 1:
		r.delegate.Error(fmt.Sprintf(
			"target '%s' specifies multiple SDK suffixes in %s: %s",
			target.Name, domain.SettingSpecializationSDKOptions, quoteList(options)))
	case len(options) == 1 && options[0] == domain.InternalSDKSuffix:
		if suffix != nil && *suffix == "" {
			msg := fmt.Sprintf(
				"target '%s' requires the internal SDK but %s builds with the public SDK",
				target.Name, spec.Source)
			if r.request.IsIndexBuild() {
				r.delegate.Warning(msg)
			} else {
				r.delegate.Error(msg)
			}
		}
		suffix = suffixPtr(domain.InternalSDKSuffix)
	}
	return suffix
}

// intern returns the configured target for the exact key, creating it if needed.
func (r *Resolver) intern(target *domain.Target, parameters *domain.BuildParameters, specializeGUID bool) *domain.ConfiguredTarget {
	ct := domain.NewConfiguredTarget(target, parameters, specializeGUID)
	if existing, ok := r.configured[ct.Key()]; ok {
		return existing
	}
	r.insert(ct)
	return ct
}

// create is intern with duplicate detection: a new configuration that builds for the same
// platform and SDK variant as an existing one is reported and the existing one returned.
func (r *Resolver) create(target *domain.Target, parameters *domain.BuildParameters, specializeGUID bool) *domain.ConfiguredTarget {
	ct := domain.NewConfiguredTarget(target, parameters, specializeGUID)
	if existing, ok := r.configured[ct.Key()]; ok {
		return existing
	}
	if dup := r.duplicateOf(ct); dup != nil {
		r.delegate.TargetError(dup, fmt.Sprintf(
			"multiple configured targets of '%s' are being created for %s; using the existing configuration",
			target.Name, describePlatform(r.wc.Settings(parameters, target, ports.PurposeBuild))))
		return dup
	}
	r.insert(ct)
	return ct
}

func (r *Resolver) insert(ct *domain.ConfiguredTarget) {
	r.configured[ct.Key()] = ct
	r.byTarget[ct.Target()] = append(r.byTarget[ct.Target()], ct)
}

func (r *Resolver) duplicateOf(ct *domain.ConfiguredTarget) *domain.ConfiguredTarget {
	target := ct.Target()
	s := r.wc.Settings(ct.Parameters(), target, ports.PurposeBuild)
	for _, other := range r.byTarget[target] {
		os := r.wc.Settings(other.Parameters(), target, ports.PurposeBuild)
		if platformDisplayName(s) != platformDisplayName(os) || variantName(s.SDKVariant()) != variantName(os.SDKVariant()) {
			continue
		}
		if (ct.SpecializeGUIDForActiveRunDestination() || other.SpecializeGUIDForActiveRunDestination()) &&
			!sameRunDestination(ct.Parameters(), other.Parameters()) {
			continue
		}
		if sdkSuffix(s) != sdkSuffix(os) {
			continue
		}
		return other
	}
	return nil
}

func (r *Resolver) superimpose(target *domain.Target, props domain.SuperimposedProperties) {
	if props.IsZero() {
		return
	}
	r.superimposed[target] = r.superimposed[target].Merge(props)
}

func platformDisplayName(s ports.Settings) string {
	if p := s.Platform(); p != nil {
		return p.DisplayName
	}
	return ""
}

func describePlatform(s ports.Settings) string {
	name := platformDisplayName(s)
	if name == "" {
		name = "an unknown platform"
	}
	if v := s.SDKVariant(); v != nil {
		return name + " (" + v.Name + ")"
	}
	return name
}

func sameRunDestination(a, b *domain.BuildParameters) bool {
	ra, rb := a.ActiveRunDestination, b.ActiveRunDestination
	if ra == nil || rb == nil {
		return ra == rb
	}
	return *ra == *rb
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}
