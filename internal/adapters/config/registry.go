package config

import "go.trai.ch/tgraph/internal/core/domain"

// buildRegistry returns the registry the workfile declares. Without declared platforms the built-in
// registry is used; toolchain, default toolchain and host declarations still apply on top of it.
func buildRegistry(workfile *Workfile) (*domain.Registry, error) {
	reg := domain.DefaultRegistry()

	if len(workfile.Platforms) > 0 {
		reg.Platforms = nil
		reg.SDKs = nil
		reg.HostPlatform = ""
		for _, p := range workfile.Platforms {
			reg.Platforms = append(reg.Platforms, &domain.Platform{
				Name:              p.Name,
				DisplayName:       displayName(p),
				FamilyName:        p.Family,
				IsSimulator:       p.Simulator,
				DefaultSDKVariant: p.DefaultSDKVariant,
				Counterpart:       p.Counterpart,
				FilterName:        p.FilterName,
			})
			reg.SDKs = append(reg.SDKs, &domain.SDK{
				CanonicalName: p.Name,
				Platform:      p.Name,
				Variants:      p.Variants,
			})
			for _, suffix := range p.SDKSuffixes {
				reg.SDKs = append(reg.SDKs, &domain.SDK{
					CanonicalName: p.Name + "." + suffix,
					Platform:      p.Name,
					Suffix:        suffix,
					Variants:      p.Variants,
				})
			}
		}
	}

	if len(workfile.Toolchains) > 0 {
		reg.Toolchains = nil
		for _, t := range workfile.Toolchains {
			reg.Toolchains = append(reg.Toolchains, &domain.Toolchain{Identifier: t.Identifier, Aliases: t.Aliases})
		}
	}
	if workfile.DefaultToolchain != "" {
		reg.DefaultToolchain = workfile.DefaultToolchain
		if t, ok := reg.Toolchain(workfile.DefaultToolchain); ok {
			reg.DefaultToolchain = t.Identifier
		}
	}
	if workfile.HostPlatform != "" {
		reg.HostPlatform = workfile.HostPlatform
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func displayName(p *PlatformDTO) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}
