package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Workspace is the loaded static project graph: every project and target, indexed by GUID.
type Workspace struct {
	root     string
	projects []*Project
	targets  []*Target
	byGUID   map[InternedString]*Target
	settings map[string]string
}

// NewWorkspace creates a new empty Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		byGUID: make(map[InternedString]*Target),
	}
}

// SetRoot sets the directory the workspace was loaded from.
func (w *Workspace) SetRoot(root string) {
	w.root = root
}

// Root returns the directory the workspace was loaded from.
func (w *Workspace) Root() string {
	return w.root
}

// SetSettings sets workspace-level build settings, the lowest settings layer.
func (w *Workspace) SetSettings(settings map[string]string) {
	w.settings = settings
}

// Settings returns workspace-level build settings.
func (w *Workspace) Settings() map[string]string {
	return w.settings
}

// AddProject registers a project.
func (w *Workspace) AddProject(p *Project) {
	w.projects = append(w.projects, p)
}

// Projects returns projects in load order.
func (w *Workspace) Projects() []*Project {
	return w.projects
}

// AddTarget adds a target to the workspace.
// It returns an error if a target with the same GUID already exists.
func (w *Workspace) AddTarget(t *Target) error {
	if _, exists := w.byGUID[t.GUID]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target_guid", t.GUID.String())
	}
	w.byGUID[t.GUID] = t
	w.targets = append(w.targets, t)
	return nil
}

// Targets returns all targets in load order.
func (w *Workspace) Targets() []*Target {
	return w.targets
}

// Target looks a target up by GUID.
func (w *Workspace) Target(guid InternedString) (*Target, bool) {
	t, ok := w.byGUID[guid]
	return t, ok
}

// FindTarget resolves a user-supplied target reference: a GUID ("project:target") or a bare
// target name that must be unique across projects.
func (w *Workspace) FindTarget(ref string) (*Target, error) {
	if t, ok := w.byGUID[NewInternedString(ref)]; ok {
		return t, nil
	}
	if strings.Contains(ref, ":") {
		return nil, zerr.With(ErrTargetNotFound, "target", ref)
	}

	var found *Target
	for _, t := range w.targets {
		if t.Name != ref {
			continue
		}
		if found != nil {
			return nil, zerr.With(ErrAmbiguousTargetName, "target", ref)
		}
		found = t
	}
	if found == nil {
		return nil, zerr.With(ErrTargetNotFound, "target", ref)
	}
	return found, nil
}

// ProjectFor returns the project that owns t.
func (w *Workspace) ProjectFor(t *Target) *Project {
	return t.Project
}

// IsPackage reports whether t is vended by a package rather than a project.
func (w *Workspace) IsPackage(t *Target) bool {
	return t.Package || t.ProductType == ProductTypePackageProduct
}

// DynamicTarget returns the target built in place of t when t is depended on.
// Targets without a dynamic variant, or with a dangling one, stand for themselves.
func (w *Workspace) DynamicTarget(t *Target) *Target {
	if t.DynamicVariantGUID.IsZero() {
		return t
	}
	if v, ok := w.byGUID[t.DynamicVariantGUID]; ok {
		return v
	}
	return t
}

// TargetGUID builds the GUID of a target declared in a project.
func TargetGUID(project, target string) InternedString {
	if project == "" {
		return NewInternedString(target)
	}
	return NewInternedString(project + ":" + target)
}
