package domain

// SuperimposedProperties are properties that, once discovered for any configured instance of a
// target, apply to every configured instance of it.
type SuperimposedProperties struct {
	MergeableLibrary bool `json:"mergeableLibrary,omitempty"`
}

// IsZero reports whether no property is set.
func (p SuperimposedProperties) IsZero() bool {
	return !p.MergeableLibrary
}

// Merge returns the union of p and other.
func (p SuperimposedProperties) Merge(other SuperimposedProperties) SuperimposedProperties {
	return SuperimposedProperties{
		MergeableLibrary: p.MergeableLibrary || other.MergeableLibrary,
	}
}

// Overrides returns the build setting overrides that express the properties.
func (p SuperimposedProperties) Overrides() map[string]string {
	if !p.MergeableLibrary {
		return nil
	}
	return map[string]string{SettingMergeableLibrary: "YES"}
}
