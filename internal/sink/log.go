// Package sink provides destinations for submitted classifications.
package sink

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/homedesigns/internal/domain"
)

// Log writes each record as a structured log event.
type Log struct {
	logger *slog.Logger
}

// NewLog returns a sink that logs through logger.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// NewLogWriter returns a sink that writes text-formatted events to w.
func NewLogWriter(w io.Writer) *Log {
	return NewLog(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func (s *Log) Emit(ctx context.Context, rec domain.Record) error {
	attrs := []any{
		"user_type", string(rec.UserType),
		"sub_category", string(rec.SubCategory),
	}
	if rec.OtherText != nil {
		attrs = append(attrs, "other_text", *rec.OtherText)
	} else {
		attrs = append(attrs, "other_text", nil)
	}
	s.logger.InfoContext(ctx, "classification_submitted", attrs...)
	return nil
}
