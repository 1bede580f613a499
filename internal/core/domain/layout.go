package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".tgraph"

	// StoreDirName is the name of the resolved plan store directory.
	StoreDirName = "store"

	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "tgraph.yaml"

	// WorkFileName is the name of the workspace configuration file.
	WorkFileName = "tgraph.work.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the plan store.
// It joins .tgraph and store.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}
