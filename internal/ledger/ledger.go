// Package ledger keeps the per-session history of successful tool runs.
package ledger

import (
	"slices"
	"sync"
	"time"
)

// TimestampLayout formats Record.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one completed tool run.
type Record struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Tool      string `json:"tool" yaml:"tool"`
	Inputs    Inputs `json:"inputs" yaml:"inputs"`
	Result    string `json:"result" yaml:"result"`
}

// Ledger is an unbounded, newest-first list of records. It is safe for
// concurrent use; it is not persisted.
type Ledger struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record stores a new entry at the front and returns it.
func (l *Ledger) Record(tool string, inputs Inputs, result string) Record {
	rec := Record{
		Timestamp: l.now().Format(TimestampLayout),
		Tool:      tool,
		Inputs:    slices.Clone(inputs),
		Result:    result,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = slices.Insert(l.records, 0, rec)
	return rec
}

// Recent returns the n newest records. n larger than the ledger returns
// everything; a negative n returns nothing.
func (l *Ledger) Recent(n int) []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n < 0 {
		return []Record{}
	}
	n = min(n, len(l.records))
	return cloneRecords(l.records[:n])
}

// All returns a copy of every record, newest first.
func (l *Ledger) All() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneRecords(l.records)
}

// Len reports the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Clear discards every record.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}

func cloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		r.Inputs = slices.Clone(r.Inputs)
		out[i] = r
	}
	return out
}
