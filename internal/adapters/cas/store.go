// Package cas implements the on-disk store of resolved plans, addressed by request digest.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.PlanStore using a file-per-digest strategy.
type Store struct{}

// NewStore creates a new PlanStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the plan stored under digest.
func (s *Store) Get(root, digest string) (*domain.Plan, error) {
	filename := s.getFilename(root, digest)
	//nolint:gosec // Path is constructed from the workspace root and a hex digest
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var plan domain.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "digest", digest)
	}

	return &plan, nil
}

// Put stores the plan under its digest.
func (s *Store) Put(root string, plan *domain.Plan) error {
	if plan.Digest == "" || filepath.Base(plan.Digest) != plan.Digest {
		return zerr.With(domain.ErrStoreWriteFailed, "digest", plan.Digest)
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, plan.Digest)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from the workspace root and a hex digest
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Clean removes the store directory under root.
func (s *Store) Clean(root string) error {
	if err := os.RemoveAll(filepath.Join(root, domain.DefaultStorePath())); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove plan store"), "root", root)
	}
	return nil
}

func (s *Store) getFilename(root, digest string) string {
	return filepath.Join(root, domain.DefaultStorePath(), digest+".json")
}
