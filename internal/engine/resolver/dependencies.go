package resolver

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
)

// explicitDependencies returns the dependencies ct builds with under settings s, in declaration
// order. Edges whose platform filters do not match, dangling edges and excluded names are
// skipped; the second result describes each skip.
func (r *Resolver) explicitDependencies(ct *domain.ConfiguredTarget, s ports.Settings) ([]*domain.Target, []string) {
	ws := r.wc.Workspace()
	target := ct.Target()
	filter := r.wc.Registry().FilterContext(s.Platform(), s.SDKVariant())
	excluded := strings.Fields(s.Value(domain.SettingExcludedExplicitTargetDependencies))
	included := strings.Fields(s.Value(domain.SettingIncludedExplicitTargetDependencies))

	var deps []*domain.Target
	var skipped []string
	for _, d := range target.Dependencies {
		if !filter.Matches(d.PlatformFilters) {
			skipped = append(skipped, fmt.Sprintf(
				"skipping dependency '%s' of '%s': platform filters do not match '%s'", d.Name, target.Name, filter))
			continue
		}
		dep, ok := ws.Target(d.GUID)
		if !ok {
			skipped = append(skipped, fmt.Sprintf(
				"skipping dependency '%s' of '%s': no such target", d.GUID, target.Name))
			continue
		}
		if matchesAny(excluded, dep.Name) && !matchesAny(included, dep.Name) {
			skipped = append(skipped, fmt.Sprintf(
				"skipping dependency '%s' of '%s': excluded by %s",
				dep.Name, target.Name, domain.SettingExcludedExplicitTargetDependencies))
			continue
		}
		deps = append(deps, ws.DynamicTarget(dep))
	}
	return deps, skipped
}

func matchesAny(patterns []string, name string) bool {
	return slices.ContainsFunc(patterns, func(p string) bool {
		ok, err := path.Match(p, name)
		return err == nil && ok
	})
}

// checkAggregates reports aggregates with package dependencies whose dependents build for more
// than one platform: the packages would be configured once per platform behind a single aggregate.
func (r *Resolver) checkAggregates(graph *domain.TargetGraph) {
	ws := r.wc.Workspace()
	for _, t := range ws.Targets() {
		if !t.IsAggregate() {
			continue
		}
		cts := graph.ConfiguredTargets(t)
		if len(cts) == 0 || !r.hasPackageDependency(t) {
			continue
		}

		var platforms []string
		for _, ct := range cts {
			for _, dependent := range graph.Dependents(ct) {
				s := r.wc.Settings(dependent.Parameters(), dependent.Target(), ports.PurposeBuild)
				if name := platformName(s.Platform()); name != "" && !slices.Contains(platforms, name) {
					platforms = append(platforms, name)
				}
			}
		}
		if len(platforms) < 2 {
			continue
		}
		slices.Sort(platforms)
		r.delegate.TargetError(cts[0], fmt.Sprintf(
			"aggregate target '%s' has package dependencies and is depended on by targets building for different platforms (%s)",
			t.Name, strings.Join(platforms, ", ")))
	}
}

func (r *Resolver) hasPackageDependency(t *domain.Target) bool {
	ws := r.wc.Workspace()
	return slices.ContainsFunc(t.Dependencies, func(d domain.TargetDependency) bool {
		dep, ok := ws.Target(d.GUID)
		return ok && ws.IsPackage(dep)
	})
}
