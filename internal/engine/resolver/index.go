package resolver

import (
	"slices"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
)

// indexPlatform is one platform and SDK variant an index build configures targets for.
type indexPlatform struct {
	platform       *domain.Platform
	variant        *domain.SDKVariant
	runDestination *domain.RunDestination
	spec           *Specialization
}

// indexPlatforms lists every loaded platform once per variant of its public SDK, in registry
// order. The second result is the host entry with the host's default variant, nil when the host
// platform is not loaded.
func indexPlatforms(reg *domain.Registry) ([]indexPlatform, *indexPlatform) {
	var out []indexPlatform
	var host *indexPlatform

	for _, p := range reg.Platforms {
		sdk, ok := reg.SDKFor(p.Name, "")
		if !ok {
			continue
		}
		variants := make([]*domain.SDKVariant, 0, len(sdk.Variants))
		for i := range sdk.Variants {
			variants = append(variants, &sdk.Variants[i])
		}
		if len(variants) == 0 {
			variants = append(variants, nil)
		}

		for _, v := range variants {
			out = append(out, indexPlatform{
				platform: p,
				variant:  v,
				runDestination: &domain.RunDestination{
					Platform:   p.Name,
					SDK:        sdk.CanonicalName,
					SDKVariant: variantName(v),
				},
				spec: &Specialization{
					Source:     Source{Kind: SourceSynthesized},
					Platform:   p,
					SDKVariant: v,
				},
			})
		}
	}

	if hp, ok := reg.Host(); ok {
		def := variantName(reg.DefaultVariant(hp))
		for i := range out {
			if out[i].platform == hp && variantName(out[i].variant) == def {
				host = &out[i]
				break
			}
		}
	}
	return out, host
}

// isTargetSuitableForPlatformForIndex reports whether target, configured under params for ip,
// actually builds for ip's platform and variant.
func (r *Resolver) isTargetSuitableForPlatformForIndex(
	target *domain.Target,
	params *domain.BuildParameters,
	ip indexPlatform,
) bool {
	if target.IsHostBuildTool() || r.dependsOnHostTool(target) {
		return true
	}

	reg := r.wc.Registry()
	s := r.wc.Settings(params.WithoutOverrides(), target, ports.PurposeResolution)
	if variantName(ip.variant) == domain.MacCatalystVariantName &&
		!domain.BoolSetting(s.Value(domain.SettingSupportsMacCatalyst)) {
		return false
	}
	if s.EnableTargetPlatformSpecialization() {
		s = r.wc.Settings(ip.spec.Imposed(params, reg), target, ports.PurposeResolution)
	}

	return platformName(s.Platform()) == ip.runDestination.Platform &&
		variantName(s.SDKVariant()) == ip.runDestination.SDKVariant
}

func (r *Resolver) dependsOnHostTool(target *domain.Target) bool {
	ws := r.wc.Workspace()
	return slices.ContainsFunc(target.Dependencies, func(d domain.TargetDependency) bool {
		dep, ok := ws.Target(d.GUID)
		return ok && dep.IsHostBuildTool()
	})
}
