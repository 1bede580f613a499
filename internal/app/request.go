package app

import (
	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildParameters turns resolve options into the global parameters of a build request.
func buildParameters(reg *domain.Registry, opts ResolveOptions) (*domain.BuildParameters, error) {
	overrides, err := domain.ParseOverrides(opts.Overrides)
	if err != nil {
		return nil, err
	}
	envOverrides, err := domain.ParseOverrides(opts.EnvOverrides)
	if err != nil {
		return nil, err
	}

	destination, err := runDestination(reg, opts)
	if err != nil {
		return nil, err
	}

	configuration := opts.Configuration
	if configuration == "" {
		configuration = DefaultConfiguration
	}

	toolchain := opts.Toolchain
	if t, ok := reg.Toolchain(toolchain); ok {
		toolchain = t.Identifier
	}

	return &domain.BuildParameters{
		Action:               domain.ActionBuild,
		Configuration:        configuration,
		ActiveRunDestination: destination,
		ActiveArchitecture:   opts.Arch,
		Toolchain:            toolchain,
		CommandLineOverrides: overrides,
		EnvironmentOverrides: envOverrides,
	}, nil
}

// runDestination selects the public SDK of the requested platform, or of the host platform when
// none is requested. Without a host platform the request has no run destination.
func runDestination(reg *domain.Registry, opts ResolveOptions) (*domain.RunDestination, error) {
	name := opts.Platform
	if name == "" {
		name = reg.HostPlatform
		if name == "" {
			return nil, nil
		}
	}

	platform, ok := reg.Platform(name)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPlatform, "platform", name)
	}
	sdk, ok := reg.SDKFor(platform.Name, "")
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPlatform, "platform", name)
	}

	variant := opts.SDKVariant
	if variant == "" {
		if v := reg.DefaultVariant(platform); v != nil {
			variant = v.Name
		}
	} else if _, ok := sdk.Variant(variant); !ok {
		err := zerr.With(domain.ErrUnknownSDKVariant, "platform", name)
		return nil, zerr.With(err, "variant", variant)
	}

	return &domain.RunDestination{
		Platform:           platform.Name,
		SDK:                sdk.CanonicalName,
		SDKVariant:         variant,
		TargetArchitecture: opts.Arch,
	}, nil
}
