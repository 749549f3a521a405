package onboarding

import (
	"context"

	"github.com/alexanderramin/homedesigns/internal/domain"
)

// Sink receives submitted classifications. The form does not know where a
// record ends up.
type Sink interface {
	Emit(ctx context.Context, rec domain.Record) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ctx context.Context, rec domain.Record) error

func (f SinkFunc) Emit(ctx context.Context, rec domain.Record) error {
	return f(ctx, rec)
}

// NoopSink discards all records.
type NoopSink struct{}

func (NoopSink) Emit(context.Context, domain.Record) error { return nil }
