package ports

import "go.trai.ch/tgraph/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace description.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and returns the workspace
	// together with the platform registry it declares.
	Load(cwd string) (*domain.Workspace, *domain.Registry, error)

	// DiscoverRoot walks up from cwd to find the workspace root.
	// Returns the directory containing tgraph.work.yaml or tgraph.yaml.
	DiscoverRoot(cwd string) (string, error)
}
