package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BuildRequestEntry is one requested top-level target with its own parameters.
type BuildRequestEntry struct {
	Target     *Target
	Parameters *BuildParameters
}

// BuildRequest is the input of a resolution: ordered top-level targets plus global parameters.
type BuildRequest struct {
	Targets    []BuildRequestEntry
	Parameters *BuildParameters
	// EnableIndexBuildArena configures every target against every platform it supports.
	EnableIndexBuildArena bool
}

// NewBuildRequest creates a request for targets that all share parameters.
func NewBuildRequest(parameters *BuildParameters, targets []*Target, indexBuild bool) *BuildRequest {
	req := &BuildRequest{
		Parameters:            parameters,
		EnableIndexBuildArena: indexBuild,
	}
	for _, t := range targets {
		req.Targets = append(req.Targets, BuildRequestEntry{Target: t, Parameters: parameters})
	}
	return req
}

// IsIndexBuild reports whether the request runs in the index build arena.
func (r *BuildRequest) IsIndexBuild() bool {
	return r.EnableIndexBuildArena || r.Parameters.Action == ActionIndexBuild
}

// Digest identifies the request: its targets, their parameters and the arena flag.
func (r *BuildRequest) Digest() string {
	var b strings.Builder
	b.WriteString(r.Parameters.Key())
	if r.EnableIndexBuildArena {
		b.WriteString("|index")
	}
	for _, e := range r.Targets {
		b.WriteString("|")
		b.WriteString(e.Target.GUID.String())
		b.WriteString("@")
		b.WriteString(e.Parameters.Key())
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(b.String()))
}
