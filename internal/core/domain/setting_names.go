package domain

import "slices"

// Build setting names the resolver reads or imposes.
const (
	SettingSDKRoot                            = "SDKROOT"
	SettingSDKVariant                         = "SDK_VARIANT"
	SettingSupportedPlatforms                 = "SUPPORTED_PLATFORMS"
	SettingSupportsMacCatalyst                = "SUPPORTS_MACCATALYST"
	SettingToolchains                         = "TOOLCHAINS"
	SettingAllowTargetPlatformSpecialization  = "ALLOW_TARGET_PLATFORM_SPECIALIZATION"
	SettingAllowBuildRequestOverrides         = "ALLOW_BUILD_REQUEST_OVERRIDES"
	SettingAutomaticallyMergeDependencies     = "AUTOMATICALLY_MERGE_DEPENDENCIES"
	SettingMergeableLibrary                   = "MERGEABLE_LIBRARY"
	SettingSpecializationSDKOptions           = "SPECIALIZATION_SDK_OPTIONS"
	SettingExcludedExplicitTargetDependencies = "EXCLUDED_EXPLICIT_TARGET_DEPENDENCIES"
	SettingIncludedExplicitTargetDependencies = "INCLUDED_EXPLICIT_TARGET_DEPENDENCIES"
	SettingArchs                              = "ARCHS"
	SettingConfiguration                      = "CONFIGURATION"
	SettingEffectivePlatformName              = "EFFECTIVE_PLATFORM_NAME"
	SettingPlatformName                       = "PLATFORM_NAME"
)

// SDKRootAuto is the SDKROOT value that opts a target into platform specialization.
const SDKRootAuto = "auto"

// InternalSDKSuffix is the canonical name suffix of internal SDKs.
const InternalSDKSuffix = "internal"

// MacCatalystVariantName is the SDK variant name of Mac Catalyst.
const MacCatalystVariantName = "iosmac"

// Platform names with special meaning for Mac Catalyst.
const (
	MacOSPlatformName = "macosx"
	IOSPlatformName   = "iphoneos"
)

// imposedSettingNames are the overrides a specialization may impose.
var imposedSettingNames = []string{
	SettingSDKRoot,
	SettingSDKVariant,
	SettingSupportedPlatforms,
	SettingSupportsMacCatalyst,
	SettingToolchains,
}

// IsImposedSetting reports whether name is an override that specialization may impose.
func IsImposedSetting(name string) bool {
	return slices.Contains(imposedSettingNames, name)
}

// BoolSetting interprets a build setting value the way YES/NO settings are read.
func BoolSetting(v string) bool {
	switch v {
	case "YES", "yes", "Yes", "TRUE", "true", "1":
		return true
	default:
		return false
	}
}
