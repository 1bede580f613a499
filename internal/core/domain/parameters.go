package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// BuildAction is the top-level action of a build request.
type BuildAction string

const (
	// ActionBuild produces binaries.
	ActionBuild BuildAction = "build"
	// ActionIndexBuild prepares every target for indexing against every platform it supports.
	ActionIndexBuild BuildAction = "indexbuild"
)

// RunDestination is the device or simulator the build request targets.
type RunDestination struct {
	Platform           string `json:"platform"`
	SDK                string `json:"sdk"`
	SDKVariant         string `json:"sdkVariant,omitempty"`
	TargetArchitecture string `json:"targetArchitecture,omitempty"`
}

func (rd *RunDestination) key() string {
	if rd == nil {
		return "-"
	}
	return rd.Platform + "/" + rd.SDK + "/" + rd.SDKVariant + "/" + rd.TargetArchitecture
}

// BuildParameters is an immutable record of everything that parameterizes settings evaluation.
// Values are never modified after construction; every derivation returns a new value.
type BuildParameters struct {
	Action               BuildAction       `json:"action"`
	Configuration        string            `json:"configuration"`
	ActiveRunDestination *RunDestination   `json:"activeRunDestination,omitempty"`
	ActiveArchitecture   string            `json:"activeArchitecture,omitempty"`
	Toolchain            string            `json:"toolchain,omitempty"`
	Overrides            map[string]string `json:"overrides,omitempty"`
	CommandLineOverrides map[string]string `json:"commandLineOverrides,omitempty"`
	EnvironmentOverrides map[string]string `json:"environmentOverrides,omitempty"`
}

// Key returns a canonical encoding of the parameters. Two parameters are equal iff their keys are.
func (p *BuildParameters) Key() string {
	var b strings.Builder
	b.WriteString(string(p.Action))
	b.WriteByte('|')
	b.WriteString(p.Configuration)
	b.WriteByte('|')
	b.WriteString(p.ActiveRunDestination.key())
	b.WriteByte('|')
	b.WriteString(p.ActiveArchitecture)
	b.WriteByte('|')
	b.WriteString(p.Toolchain)
	writeTable(&b, "O", p.Overrides)
	writeTable(&b, "C", p.CommandLineOverrides)
	writeTable(&b, "E", p.EnvironmentOverrides)
	return b.String()
}

func writeTable(b *strings.Builder, tag string, table map[string]string) {
	b.WriteByte('|')
	b.WriteString(tag)
	b.WriteByte(':')
	for _, k := range slices.Sorted(maps.Keys(table)) {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(table[k])
		b.WriteByte(';')
	}
}

// Digest returns a short stable hash of Key.
func (p *BuildParameters) Digest() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(p.Key()))
}

// Equal reports whether p and other describe the same parameters.
func (p *BuildParameters) Equal(other *BuildParameters) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Key() == other.Key()
}

func (p *BuildParameters) clone() *BuildParameters {
	c := *p
	c.Overrides = maps.Clone(p.Overrides)
	c.CommandLineOverrides = maps.Clone(p.CommandLineOverrides)
	c.EnvironmentOverrides = maps.Clone(p.EnvironmentOverrides)
	if p.ActiveRunDestination != nil {
		rd := *p.ActiveRunDestination
		c.ActiveRunDestination = &rd
	}
	return &c
}

// ReplacingActiveRunDestination returns a copy targeting rd with the given architecture.
func (p *BuildParameters) ReplacingActiveRunDestination(rd *RunDestination, arch string) *BuildParameters {
	c := p.clone()
	if rd != nil {
		cp := *rd
		c.ActiveRunDestination = &cp
	} else {
		c.ActiveRunDestination = nil
	}
	c.ActiveArchitecture = arch
	return c
}

// ReplacingAction returns a copy with a different build action.
func (p *BuildParameters) ReplacingAction(action BuildAction) *BuildParameters {
	c := p.clone()
	c.Action = action
	return c
}

// MergingOverrides returns a copy whose override table has overrides merged in, later values winning.
func (p *BuildParameters) MergingOverrides(overrides map[string]string) *BuildParameters {
	if len(overrides) == 0 {
		return p
	}
	c := p.clone()
	if c.Overrides == nil {
		c.Overrides = make(map[string]string, len(overrides))
	}
	maps.Copy(c.Overrides, overrides)
	return c
}

// WithoutOverrides returns a copy with the override table removed. Command-line and environment
// layers are user intent and are kept.
func (p *BuildParameters) WithoutOverrides() *BuildParameters {
	if len(p.Overrides) == 0 {
		return p
	}
	c := p.clone()
	c.Overrides = nil
	return c
}

// WithoutImposedOverrides returns a copy with every specialization override removed,
// except those the build request itself carries.
func (p *BuildParameters) WithoutImposedOverrides(request *BuildParameters) *BuildParameters {
	c := p.clone()
	for k := range c.Overrides {
		if IsImposedSetting(k) {
			delete(c.Overrides, k)
		}
	}
	if request != nil {
		for k, v := range request.Overrides {
			if IsImposedSetting(k) {
				if c.Overrides == nil {
					c.Overrides = make(map[string]string)
				}
				c.Overrides[k] = v
			}
		}
	}
	if len(c.Overrides) == 0 {
		c.Overrides = nil
	}
	return c
}

// Override returns the highest-priority override for name: the override table, then command line,
// then environment.
func (p *BuildParameters) Override(name string) (string, bool) {
	if v, ok := p.Overrides[name]; ok {
		return v, true
	}
	if v, ok := p.CommandLineOverrides[name]; ok {
		return v, true
	}
	if v, ok := p.EnvironmentOverrides[name]; ok {
		return v, true
	}
	return "", false
}

// UserOverride returns the command-line or environment override for name, ignoring imposed ones.
func (p *BuildParameters) UserOverride(name string) (string, bool) {
	if v, ok := p.CommandLineOverrides[name]; ok {
		return v, true
	}
	if v, ok := p.EnvironmentOverrides[name]; ok {
		return v, true
	}
	return "", false
}

// ToolchainOverride returns the toolchains explicitly requested by the user, or nil.
func (p *BuildParameters) ToolchainOverride() []string {
	if p.Toolchain != "" {
		return []string{p.Toolchain}
	}
	if v, ok := p.UserOverride(SettingToolchains); ok && strings.TrimSpace(v) != "" {
		return strings.Fields(v)
	}
	return nil
}

// ParseOverrides parses KEY=VALUE pairs into a table.
func ParseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, zerr.With(ErrInvalidOverride, "override", pair)
		}
		out[k] = v
	}
	return out, nil
}
