package filedeps

import (
	"context"
	"log/slog"
)

// Severity is the level a validator reports failures at when a Sink is
// attached. The caller picks the severity once per validator; the validator
// never escalates or downgrades it.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityCritical
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// Sink receives every validation failure as a side effect. Logging is never
// required for correctness: a nil sink simply means no reporting happens, and
// the returned Result is identical either way.
type Sink interface {
	Report(sev Severity, err *ValidationError)
}

// LevelCritical is the slog level SlogSink maps SeverityCritical to.
const LevelCritical = slog.LevelError + 4

// SlogSink adapts a *slog.Logger into a Sink.
type SlogSink struct{ log *slog.Logger }

// NewSlogSink wraps the given logger; a nil logger falls back to slog.Default.
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{log: l}
}

func (s *SlogSink) Report(sev Severity, err *ValidationError) {
	if err == nil {
		return
	}
	level := slog.LevelWarn
	switch sev {
	case SeverityError:
		level = slog.LevelError
	case SeverityCritical:
		level = LevelCritical
	}
	attrs := []slog.Attr{slog.String("code", err.Code)}
	for _, d := range err.Details {
		attrs = append(attrs, slog.String("detail", d))
	}
	s.log.LogAttrs(context.Background(), level, err.Message, attrs...)
}
