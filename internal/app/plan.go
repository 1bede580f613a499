package app

import (
	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
)

// newPlan flattens a resolved graph into its persisted form, dependencies first.
func newPlan(
	settings ports.SettingsProvider,
	request *domain.BuildRequest,
	graph *domain.TargetGraph,
	diagnostics *domain.DiagnosticLog,
) *domain.Plan {
	params := request.Parameters
	plan := &domain.Plan{
		Digest:         request.Digest(),
		Action:         params.Action,
		Configuration:  params.Configuration,
		RunDestination: params.ActiveRunDestination,
		Targets:        make([]domain.PlanTarget, 0, graph.Len()),
		Diagnostics:    diagnostics.Diagnostics(),
	}

	topLevel := make(map[*domain.ConfiguredTarget]bool)
	for _, ct := range graph.TopLevelTargets() {
		topLevel[ct] = true
	}

	for _, ct := range graph.AllTargets() {
		target := ct.Target()
		effective := graph.EffectiveParameters(ct)
		s := settings.Settings(effective, target, ports.PurposeBuild)

		pt := domain.PlanTarget{
			GUID:             ct.GUID(),
			Target:           target.Name,
			TopLevel:         topLevel[ct],
			MergeableLibrary: graph.SuperimposedProperties(target).MergeableLibrary,
			Overrides:        effective.Overrides,
		}
		if target.Project != nil {
			pt.Project = target.Project.Name
		}
		if p := s.Platform(); p != nil {
			pt.Platform = p.Name
		}
		if sdk := s.SDK(); sdk != nil {
			pt.SDK = sdk.CanonicalName
		}
		if v := s.SDKVariant(); v != nil {
			pt.SDKVariant = v.Name
		}
		for _, dep := range graph.Dependencies(ct) {
			pt.Dependencies = append(pt.Dependencies, dep.GUID())
		}
		plan.Targets = append(plan.Targets, pt)
	}
	return plan
}
