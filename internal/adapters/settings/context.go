package settings

import (
	"sync"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
)

type cacheKey struct {
	parameters string
	target     domain.InternedString
	purpose    ports.SettingsPurpose
}

// Context is the WorkspaceContext of one loaded workspace. It caches settings per
// (parameters, target, purpose) so the same inputs always return the same *Settings.
type Context struct {
	workspace *domain.Workspace
	registry  *domain.Registry

	mu    sync.RWMutex
	cache map[cacheKey]*Settings
}

var _ ports.WorkspaceContext = (*Context)(nil)

// NewContext creates a Context for workspace and registry.
func NewContext(workspace *domain.Workspace, registry *domain.Registry) *Context {
	return &Context{
		workspace: workspace,
		registry:  registry,
		cache:     make(map[cacheKey]*Settings),
	}
}

// Workspace implements ports.WorkspaceContext.
func (c *Context) Workspace() *domain.Workspace {
	return c.workspace
}

// Registry implements ports.WorkspaceContext.
func (c *Context) Registry() *domain.Registry {
	return c.registry
}

// Settings implements ports.SettingsProvider.
func (c *Context) Settings(
	parameters *domain.BuildParameters,
	target *domain.Target,
	purpose ports.SettingsPurpose,
) ports.Settings {
	return c.Evaluated(parameters, target, purpose)
}

// Evaluated is Settings with the concrete snapshot type.
func (c *Context) Evaluated(
	parameters *domain.BuildParameters,
	target *domain.Target,
	purpose ports.SettingsPurpose,
) *Settings {
	key := cacheKey{parameters: parameters.Key(), purpose: purpose}
	if target != nil {
		key.target = target.GUID
	}

	c.mu.RLock()
	s, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return s
	}

	// Evaluation runs outside the lock; the first stored snapshot wins.
	s = evaluate(c.workspace, c.registry, parameters, target)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.cache[key]; ok {
		return existing
	}
	c.cache[key] = s
	return s
}

// Len returns the number of cached snapshots.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Factory creates settings contexts.
type Factory struct{}

var _ ports.WorkspaceContextFactory = Factory{}

// New implements ports.WorkspaceContextFactory.
func (Factory) New(workspace *domain.Workspace, registry *domain.Registry) ports.WorkspaceContext {
	return NewContext(workspace, registry)
}
