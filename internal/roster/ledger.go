// Package roster implements the attendance ledger: normalization of extracted
// name lines, timestamped visit accumulation, report building, and CSV export.
package roster

import (
	"encoding/json"
	"fmt"
	"time"
)

// Ledger accumulates visit timestamps per attendee name. Entries are kept in
// insertion order; every known name has at least one visit.
type Ledger struct {
	visits map[string][]time.Time
	order  []string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{visits: make(map[string][]time.Time)}
}

// Merge records one submission. Every name in the batch gets the same
// timestamp appended; names not seen before are created first. Returns the
// number of newly created entries. Merging the same batch twice appends two
// visits per name: each submission is a distinct attendance check.
func (l *Ledger) Merge(names []string, ts time.Time) int {
	newCount := 0
	for _, name := range names {
		if _, ok := l.visits[name]; !ok {
			l.visits[name] = nil
			l.order = append(l.order, name)
			newCount++
		}
		l.visits[name] = append(l.visits[name], ts)
	}
	return newCount
}

// Clear drops all entries. Any confirmation step is the caller's concern.
func (l *Ledger) Clear() {
	l.visits = make(map[string][]time.Time)
	l.order = nil
}

// Len returns the number of distinct attendees.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Names returns the attendee names in insertion order.
func (l *Ledger) Names() []string {
	return append([]string(nil), l.order...)
}

// Visits returns the recorded timestamps for a name, oldest first.
func (l *Ledger) Visits(name string) []time.Time {
	return append([]time.Time(nil), l.visits[name]...)
}

type ledgerEntry struct {
	Name   string      `json:"name"`
	Visits []time.Time `json:"visits"`
}

// MarshalJSON encodes the ledger as an entry array, preserving insertion order.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	entries := make([]ledgerEntry, 0, len(l.order))
	for _, name := range l.order {
		entries = append(entries, ledgerEntry{Name: name, Visits: l.visits[name]})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON restores a ledger from its entry-array encoding.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var entries []ledgerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	l.visits = make(map[string][]time.Time, len(entries))
	l.order = nil
	for _, e := range entries {
		if len(e.Visits) == 0 {
			return fmt.Errorf("ledger entry %q has no visits", e.Name)
		}
		if _, ok := l.visits[e.Name]; ok {
			return fmt.Errorf("duplicate ledger entry %q", e.Name)
		}
		l.visits[e.Name] = e.Visits
		l.order = append(l.order, e.Name)
	}
	return nil
}
