package sink

import (
	"context"
	"errors"

	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/alexanderramin/homedesigns/internal/onboarding"
)

// Multi emits to every sink in order. All sinks are tried; their errors are
// joined.
type Multi []onboarding.Sink

func (m Multi) Emit(ctx context.Context, rec domain.Record) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Emit(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
