package domain

import (
	"cmp"
	"slices"
	"sync"

	"go.trai.ch/zerr"
)

// DiagnosticLevel is the severity of a diagnostic.
type DiagnosticLevel int

const (
	// LevelDebug diagnostics are only shown in verbose mode.
	LevelDebug DiagnosticLevel = iota
	// LevelNote is informational.
	LevelNote
	// LevelWarning is surfaced to the user; resolution proceeds with a fallback.
	LevelWarning
	// LevelError flags the resolved graph as invalid for a normal build.
	LevelError
)

// String returns the lowercase level name.
func (l DiagnosticLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelNote:
		return "note"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l DiagnosticLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *DiagnosticLevel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "debug":
		*l = LevelDebug
	case "note":
		*l = LevelNote
	case "warning":
		*l = LevelWarning
	case "error":
		*l = LevelError
	default:
		return zerr.With(ErrUnknownDiagnosticLevel, "level", string(text))
	}
	return nil
}

// Diagnostic is a single message produced while resolving a graph.
type Diagnostic struct {
	Level   DiagnosticLevel `json:"level"`
	Message string          `json:"message"`
	// Target is the GUID of the configured target the diagnostic is scoped to, empty when global.
	Target string `json:"target,omitempty"`
}

// DiagnosticLog accumulates diagnostics. It is safe for concurrent use.
type DiagnosticLog struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewDiagnosticLog creates an empty log.
func NewDiagnosticLog() *DiagnosticLog {
	return &DiagnosticLog{}
}

// Emit records d.
func (l *DiagnosticLog) Emit(d Diagnostic) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, d)
}

// Note records a global note.
func (l *DiagnosticLog) Note(msg string) {
	l.Emit(Diagnostic{Level: LevelNote, Message: msg})
}

// Warning records a global warning.
func (l *DiagnosticLog) Warning(msg string) {
	l.Emit(Diagnostic{Level: LevelWarning, Message: msg})
}

// Error records a global error.
func (l *DiagnosticLog) Error(msg string) {
	l.Emit(Diagnostic{Level: LevelError, Message: msg})
}

// TargetNote records a note scoped to a configured target.
func (l *DiagnosticLog) TargetNote(ct *ConfiguredTarget, msg string) {
	l.Emit(Diagnostic{Level: LevelNote, Message: msg, Target: ct.GUID()})
}

// TargetWarning records a warning scoped to a configured target.
func (l *DiagnosticLog) TargetWarning(ct *ConfiguredTarget, msg string) {
	l.Emit(Diagnostic{Level: LevelWarning, Message: msg, Target: ct.GUID()})
}

// TargetError records an error scoped to a configured target.
func (l *DiagnosticLog) TargetError(ct *ConfiguredTarget, msg string) {
	l.Emit(Diagnostic{Level: LevelError, Message: msg, Target: ct.GUID()})
}

// HasErrors reports whether any error was recorded.
func (l *DiagnosticLog) HasErrors() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.ContainsFunc(l.items, func(d Diagnostic) bool { return d.Level == LevelError })
}

// Count returns the number of diagnostics at level.
func (l *DiagnosticLog) Count(level DiagnosticLevel) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, d := range l.items {
		if d.Level == level {
			n++
		}
	}
	return n
}

// Diagnostics returns a sorted copy of the recorded diagnostics, most severe first.
// Duplicate diagnostics collapse into one.
func (l *DiagnosticLog) Diagnostics() []Diagnostic {
	l.mu.Lock()
	out := slices.Clone(l.items)
	l.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(b.Level, a.Level),
			cmp.Compare(a.Target, b.Target),
			cmp.Compare(a.Message, b.Message),
		)
	})
	return slices.Compact(out)
}
