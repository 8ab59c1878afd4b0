// Package audit records who moved which item to which custody status.
package audit

import (
	"context"
	"errors"

	"trade-custody/internal/item"
	"trade-custody/pkg/log"
)

// Sink receives one entry per applied transition.
type Sink interface {
	Record(ctx context.Context, entry item.AuditEntry) error
}

// Recorder is the persistence side of an audit trail.
type Recorder interface {
	RecordAudit(ctx context.Context, entry item.AuditEntry) error
}

type logSink struct {
	l log.Logger
}

// NewLogSink writes every entry as a structured log line.
func NewLogSink(l log.Logger) Sink {
	return &logSink{l: l}
}

func (s *logSink) Record(ctx context.Context, e item.AuditEntry) error {
	s.l.Infof(ctx, "audit: batch=%s actor=%d role=%s item=%d action=%s %s->%s",
		e.BatchID, e.ActorID, e.ActorRole, e.ItemID, e.Action, e.PreviousStatus, e.NewStatus)
	return nil
}

type storeSink struct {
	r Recorder
}

// NewStoreSink persists entries through r.
func NewStoreSink(r Recorder) Sink {
	return &storeSink{r: r}
}

func (s *storeSink) Record(ctx context.Context, e item.AuditEntry) error {
	return s.r.RecordAudit(ctx, e)
}

type multiSink []Sink

// Multi fans every entry out to all sinks. Every sink is called even when one
// fails; the failures are joined.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Record(ctx context.Context, e item.AuditEntry) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
