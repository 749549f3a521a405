package sink

import (
	"context"
	"sync"

	"github.com/alexanderramin/homedesigns/internal/domain"
)

// Recorder keeps records in memory. Used by --dry-run and tests.
type Recorder struct {
	mu      sync.Mutex
	records []domain.Record
}

func (r *Recorder) Emit(_ context.Context, rec domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// Records returns a copy of everything emitted so far.
func (r *Recorder) Records() []domain.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Record, len(r.records))
	copy(out, r.records)
	return out
}

// Last returns the most recent record, if any.
func (r *Recorder) Last() (domain.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) == 0 {
		return domain.Record{}, false
	}
	return r.records[len(r.records)-1], true
}
