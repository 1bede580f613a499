package domain

import "strings"

// ConfiguredTarget is a Target bound to concrete BuildParameters: the unit actually built.
// Instances are interned by the resolver, so pointer identity and structural equality coincide.
type ConfiguredTarget struct {
	target                                *Target
	parameters                            *BuildParameters
	specializeGUIDForActiveRunDestination bool
	key                                   string
	guid                                  string
}

// NewConfiguredTarget binds target to parameters.
func NewConfiguredTarget(target *Target, parameters *BuildParameters, specializeGUID bool) *ConfiguredTarget {
	ct := &ConfiguredTarget{
		target:                                target,
		parameters:                            parameters,
		specializeGUIDForActiveRunDestination: specializeGUID,
	}
	ct.key = configuredKey(target, parameters, specializeGUID)
	ct.guid = ct.computeGUID()
	return ct
}

func configuredKey(target *Target, parameters *BuildParameters, specializeGUID bool) string {
	flag := "0"
	if specializeGUID {
		flag = "1"
	}
	return target.GUID.String() + "\x00" + parameters.Key() + "\x00" + flag
}

// Target returns the static target.
func (ct *ConfiguredTarget) Target() *Target {
	return ct.target
}

// Parameters returns the build parameters the target is configured with.
func (ct *ConfiguredTarget) Parameters() *BuildParameters {
	return ct.parameters
}

// SpecializeGUIDForActiveRunDestination reports whether the GUID includes the run destination.
func (ct *ConfiguredTarget) SpecializeGUIDForActiveRunDestination() bool {
	return ct.specializeGUIDForActiveRunDestination
}

// Key is the identity of the configured target: target, parameters and flag.
func (ct *ConfiguredTarget) Key() string {
	return ct.key
}

// Equal compares identity fields only.
func (ct *ConfiguredTarget) Equal(other *ConfiguredTarget) bool {
	if ct == other {
		return true
	}
	if ct == nil || other == nil {
		return false
	}
	return ct.key == other.key
}

// GUID returns a stable identifier derived from the target GUID, the SDKROOT and SDK_VARIANT
// overrides and, when specialized for the run destination, the run destination itself.
func (ct *ConfiguredTarget) GUID() string {
	return ct.guid
}

func (ct *ConfiguredTarget) computeGUID() string {
	var b strings.Builder
	b.WriteString(ct.target.GUID.String())
	for _, name := range []string{SettingSDKRoot, SettingSDKVariant} {
		if v, ok := ct.parameters.Overrides[name]; ok {
			b.WriteString("-")
			b.WriteString(name)
			b.WriteString("=")
			b.WriteString(v)
		}
	}
	if ct.specializeGUIDForActiveRunDestination {
		if rd := ct.parameters.ActiveRunDestination; rd != nil {
			b.WriteString("-dest=")
			b.WriteString(rd.Platform)
			b.WriteString("/")
			b.WriteString(rd.SDK)
			b.WriteString("/")
			b.WriteString(rd.SDKVariant)
		}
	}
	return b.String()
}

// String returns the target name and GUID.
func (ct *ConfiguredTarget) String() string {
	return ct.target.Name + " (" + ct.guid + ")"
}
