package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/tgraph/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans to a logger at debug level.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; spans are reported once their duration is known.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(describeSpan(s))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func describeSpan(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	duration := s.EndTime().Sub(s.StartTime())

	if s.Status().Code == codes.Error {
		fmt.Fprintf(&sb, "%s failed after %s", s.Name(), duration)
		if desc := s.Status().Description; desc != "" {
			sb.WriteString(": " + desc)
		}
	} else {
		fmt.Fprintf(&sb, "%s finished in %s", s.Name(), duration)
	}

	for _, kv := range s.Attributes() {
		sb.WriteString(" " + formatAttribute(kv))
	}
	return sb.String()
}

func formatAttribute(kv attribute.KeyValue) string {
	return string(kv.Key) + "=" + kv.Value.Emit()
}
