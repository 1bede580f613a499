// Package domain contains the core domain models for target specialization and dependency resolution.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// TargetGraph is the resolved graph of configured targets.
type TargetGraph struct {
	discovered   []*ConfiguredTarget
	byKey        map[string]*ConfiguredTarget
	topLevel     []*ConfiguredTarget
	dependencies map[*ConfiguredTarget][]*ConfiguredTarget
	dependents   map[*ConfiguredTarget][]*ConfiguredTarget
	superimposed map[*Target]SuperimposedProperties
	order        []*ConfiguredTarget
}

// NewTargetGraph creates a new empty TargetGraph.
func NewTargetGraph() *TargetGraph {
	return &TargetGraph{
		byKey:        make(map[string]*ConfiguredTarget),
		dependencies: make(map[*ConfiguredTarget][]*ConfiguredTarget),
		dependents:   make(map[*ConfiguredTarget][]*ConfiguredTarget),
		superimposed: make(map[*Target]SuperimposedProperties),
	}
}

// AddTarget adds a configured target. Adding the same configured target twice is a no-op.
func (g *TargetGraph) AddTarget(ct *ConfiguredTarget, topLevel bool) {
	if _, exists := g.byKey[ct.Key()]; !exists {
		g.byKey[ct.Key()] = ct
		g.discovered = append(g.discovered, ct)
	}
	if topLevel && !slices.Contains(g.topLevel, ct) {
		g.topLevel = append(g.topLevel, ct)
	}
}

// SetDependencies records the resolved dependencies of ct.
func (g *TargetGraph) SetDependencies(ct *ConfiguredTarget, deps []*ConfiguredTarget) {
	g.dependencies[ct] = deps
	for _, d := range deps {
		g.dependents[d] = append(g.dependents[d], ct)
	}
}

// Superimpose records properties that apply to every configured instance of t.
func (g *TargetGraph) Superimpose(t *Target, props SuperimposedProperties) {
	if props.IsZero() {
		return
	}
	g.superimposed[t] = g.superimposed[t].Merge(props)
}

// Validate checks for cycles using a topological sort.
// It populates the order AllTargets returns if successful.
func (g *TargetGraph) Validate() error {
	g.order = make([]*ConfiguredTarget, 0, len(g.discovered))
	visited := make(map[*ConfiguredTarget]int) // 0: unvisited, 1: visiting, 2: visited
	var path []*ConfiguredTarget

	var visit func(u *ConfiguredTarget) error
	visit = func(u *ConfiguredTarget) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.dependencies[u] {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, u)
		return nil
	}

	// Discovery order keeps the result independent of map iteration.
	for _, ct := range g.discovered {
		if visited[ct] == 0 {
			if err := visit(ct); err != nil {
				g.order = slices.Clone(g.discovered)
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *TargetGraph) buildCycleError(path []*ConfiguredTarget, dep *ConfiguredTarget) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].GUID() + " -> "
	}
	cyclePath += dep.GUID()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// AllTargets returns every configured target, dependencies before dependents.
func (g *TargetGraph) AllTargets() []*ConfiguredTarget {
	if g.order == nil {
		return slices.Clone(g.discovered)
	}
	return slices.Clone(g.order)
}

// Len returns the number of configured targets.
func (g *TargetGraph) Len() int {
	return len(g.discovered)
}

// Contains reports whether ct is part of the graph.
func (g *TargetGraph) Contains(ct *ConfiguredTarget) bool {
	_, ok := g.byKey[ct.Key()]
	return ok
}

// TopLevelTargets returns the configured targets created for the build request, in request order.
func (g *TargetGraph) TopLevelTargets() []*ConfiguredTarget {
	return slices.Clone(g.topLevel)
}

// Dependencies returns the resolved dependencies of ct in declaration order.
func (g *TargetGraph) Dependencies(ct *ConfiguredTarget) []*ConfiguredTarget {
	return slices.Clone(g.dependencies[ct])
}

// Dependents returns the configured targets that depend on ct.
func (g *TargetGraph) Dependents(ct *ConfiguredTarget) []*ConfiguredTarget {
	return slices.Clone(g.dependents[ct])
}

// ConfiguredTargets returns every configured instance of t in discovery order.
func (g *TargetGraph) ConfiguredTargets(t *Target) []*ConfiguredTarget {
	var out []*ConfiguredTarget
	for _, ct := range g.discovered {
		if ct.Target() == t {
			out = append(out, ct)
		}
	}
	return out
}

// SuperimposedProperties returns the properties imposed on every configured instance of t.
func (g *TargetGraph) SuperimposedProperties(t *Target) SuperimposedProperties {
	return g.superimposed[t]
}

// EffectiveParameters returns the parameters of ct with superimposed properties applied.
func (g *TargetGraph) EffectiveParameters(ct *ConfiguredTarget) *BuildParameters {
	return ct.Parameters().MergingOverrides(g.superimposed[ct.Target()].Overrides())
}

// Walk returns an iterator that yields configured targets in dependency order.
// It assumes Validate() has been called and returned nil.
func (g *TargetGraph) Walk() iter.Seq[*ConfiguredTarget] {
	return func(yield func(*ConfiguredTarget) bool) {
		for _, ct := range g.order {
			if !yield(ct) {
				return
			}
		}
	}
}
