package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"wgtui/internal/peer"
)

// TracedProvider records one span per peer source call.
type TracedProvider struct {
	next   peer.Provider
	events peer.EventSource
	tracer oteltrace.Tracer
}

// Ensure TracedProvider implements peer.Provider and peer.EventSource.
var (
	_ peer.Provider    = (*TracedProvider)(nil)
	_ peer.EventSource = (*TracedProvider)(nil)
)

// TraceProvider wraps p. Events are traced too when p is also a peer.EventSource.
func TraceProvider(p peer.Provider, tracer oteltrace.Tracer) *TracedProvider {
	tp := &TracedProvider{next: p, tracer: tracer}
	if src, ok := p.(peer.EventSource); ok {
		tp.events = src
	}
	return tp
}

// List implements peer.Provider.
func (t *TracedProvider) List(ctx context.Context) ([]peer.Peer, error) {
	ctx, span := t.tracer.Start(ctx, "peer.list")
	defer span.End()
	peers, err := t.next.List(ctx)
	span.SetAttributes(attribute.Int("wgtui.peer.count", len(peers)))
	record(span, err)
	return peers, err
}

// Add implements peer.Provider.
func (t *TracedProvider) Add(ctx context.Context, p peer.Peer) error {
	ctx, span := t.tracer.Start(ctx, "peer.add", oteltrace.WithAttributes(peerAttrs(p)...))
	defer span.End()
	err := t.next.Add(ctx, p)
	record(span, err)
	return err
}

// Update implements peer.Provider.
func (t *TracedProvider) Update(ctx context.Context, old, updated peer.Peer) error {
	ctx, span := t.tracer.Start(ctx, "peer.update", oteltrace.WithAttributes(peerAttrs(old)...))
	defer span.End()
	span.SetAttributes(attribute.Bool("wgtui.peer.key_changed", old.PublicKey != updated.PublicKey))
	err := t.next.Update(ctx, old, updated)
	record(span, err)
	return err
}

// Remove implements peer.Provider.
func (t *TracedProvider) Remove(ctx context.Context, p peer.Peer) error {
	ctx, span := t.tracer.Start(ctx, "peer.remove", oteltrace.WithAttributes(peerAttrs(p)...))
	defer span.End()
	err := t.next.Remove(ctx, p)
	record(span, err)
	return err
}

// Events implements peer.EventSource. It returns no events when the wrapped
// provider has none.
func (t *TracedProvider) Events(ctx context.Context) ([]peer.LogEntry, error) {
	if t.events == nil {
		return nil, nil
	}
	ctx, span := t.tracer.Start(ctx, "peer.events")
	defer span.End()
	entries, err := t.events.Events(ctx)
	span.SetAttributes(attribute.Int("wgtui.event.count", len(entries)))
	record(span, err)
	return entries, err
}

func peerAttrs(p peer.Peer) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("wgtui.peer.name", p.Name),
		attribute.String("wgtui.peer.public_key", p.PublicKey),
	}
}

func record(span oteltrace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
