package gateway

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bloom/internal/port"
)

const tracerName = "bloom/internal/gateway"

// TracedGateway records a span around every call to the wrapped gateway.
type TracedGateway struct {
	next   port.ModelGateway
	tracer trace.Tracer
}

// NewTracedGateway wraps next using the global tracer provider.
func NewTracedGateway(next port.ModelGateway) *TracedGateway {
	return &TracedGateway{next: next, tracer: otel.Tracer(tracerName)}
}

func (t *TracedGateway) Model() string { return t.next.Model() }

func (t *TracedGateway) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := t.tracer.Start(ctx, "gateway.Generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", t.next.Model()),
			attribute.Int("llm.prompt_chars", len(prompt)),
		))
	defer span.End()

	reply, err := t.next.Generate(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("llm.reply_chars", len(reply)))
	return reply, nil
}
