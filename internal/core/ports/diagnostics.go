package ports

import "go.trai.ch/tgraph/internal/core/domain"

// DiagnosticsDelegate receives diagnostics produced while resolving a target graph.
//
//go:generate mockgen -source=diagnostics.go -destination=mocks/mock_diagnostics.go -package=mocks
type DiagnosticsDelegate interface {
	Emit(d domain.Diagnostic)
	Note(msg string)
	Warning(msg string)
	Error(msg string)
	// TargetNote records a note in the context of a configured target.
	TargetNote(ct *domain.ConfiguredTarget, msg string)
	// TargetWarning records a warning in the context of a configured target.
	TargetWarning(ct *domain.ConfiguredTarget, msg string)
	// TargetError records an error in the context of a configured target.
	TargetError(ct *domain.ConfiguredTarget, msg string)
}
