package ports

import (
	"io"

	"go.trai.ch/tgraph/internal/core/domain"
)

// Renderer presents a resolved plan.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderPlan writes the plan to w.
	RenderPlan(w io.Writer, plan *domain.Plan, format domain.OutputFormat) error

	// RenderPlatforms writes the platform registry to w.
	RenderPlatforms(w io.Writer, registry *domain.Registry, format domain.OutputFormat) error
}
