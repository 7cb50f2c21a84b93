package logging

import (
	"time"

	"go.uber.org/zap"
)

type duration struct {
	name     string
	duration time.Duration
}

// Durations tracks how long each named stage of a translation took.
type Durations []duration

// Record records a duration
func (d *Durations) Record(name string, elapsed time.Duration) {
	*d = append(*d, duration{name, elapsed})
}

// Since records the time elapsed since start under name and returns the current time,
// so consecutive stages can be chained: start = d.Since("parse", start).
func (d *Durations) Since(name string, start time.Time) time.Time {
	now := time.Now()
	d.Record(name, now.Sub(start))
	return now
}

// Fields converts the recorded durations into zap fields, one per stage.
func (d Durations) Fields() []zap.Field {
	fields := make([]zap.Field, 0, len(d))
	for _, entry := range d {
		fields = append(fields, zap.Duration(entry.name, entry.duration))
	}
	return fields
}

// Flush logs the recorded durations, after any extra fields, as a single
// entry and resets the tracker.
func (d *Durations) Flush(l *zap.Logger, msg string, fields ...zap.Field) {
	l.Info(msg, append(fields, d.Fields()...)...)
	*d = nil
}
