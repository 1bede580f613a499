package ports

import "go.trai.ch/tgraph/internal/core/domain"

// PlanStore defines the interface for storing and retrieving resolved plans.
// Plans live under the workspace root passed to each call.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PlanStore interface {
	// Get retrieves the plan stored under digest.
	// Returns nil, nil if not found.
	Get(root, digest string) (*domain.Plan, error)

	// Put stores the plan under its request digest.
	Put(root string, plan *domain.Plan) error

	// Clean removes every stored plan.
	Clean(root string) error
}
