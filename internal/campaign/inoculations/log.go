// Package inoculations owns every administered-dose record. The global log
// is the single source of truth; a per-user index gives each recipient their
// doses in administration order. Every mutation keeps both paths consistent:
// a record is either reachable through both or through neither.
package inoculations

import (
	"github.com/google/uuid"

	"github.com/dgaranin/vaxkeeper/internal/campaign"
	"github.com/dgaranin/vaxkeeper/internal/hashx"
)

// userInitialCap is the starting capacity of a user's record group.
const userInitialCap = 4

// userGroup holds one recipient's records. Administration order is append
// order; a deletion swaps with the last element, so order is only guaranteed
// while no record of the user has been deleted.
type userGroup struct {
	name    string
	records []*campaign.Inoculation
}

func (g *userGroup) remove(id string) {
	for i, rec := range g.records {
		if rec.ID == id {
			last := len(g.records) - 1
			g.records[i] = g.records[last]
			g.records[last] = nil
			g.records = g.records[:last]
			return
		}
	}
}

// Log is the in-memory inoculation store. Not safe for concurrent use.
type Log struct {
	// all holds every live record in administration order (oldest first).
	// Appending keeps chronological order because the simulated date never
	// moves backwards.
	all    []*campaign.Inoculation
	byUser *hashx.Index[*userGroup]
}

// NewLog returns an empty log whose user index uses tableSize hash buckets.
func NewLog(tableSize int) *Log {
	return &Log{byUser: hashx.New[*userGroup](tableSize)}
}

// Record creates an inoculation for user from the given batch on date and
// links it into the global log and the user's group. The caller has already
// applied the administration rules; Record itself never fails.
func (l *Log) Record(user, batch string, date campaign.Date) *campaign.Inoculation {
	rec := &campaign.Inoculation{
		ID:    uuid.NewString(),
		User:  user,
		Batch: batch,
		Date:  date,
	}

	l.all = append(l.all, rec)

	g, ok := l.byUser.Lookup(user)
	if !ok {
		g = &userGroup{name: user, records: make([]*campaign.Inoculation, 0, userInitialCap)}
		l.byUser.Insert(user, g)
	}
	g.records = append(g.records, rec)

	return rec
}

// ByUser returns a snapshot of the user's records in administration order.
// The second result is false when the user is unknown or has no live record
// left.
func (l *Log) ByUser(user string) ([]*campaign.Inoculation, bool) {
	g, ok := l.byUser.Lookup(user)
	if !ok || len(g.records) == 0 {
		return nil, false
	}
	snapshot := make([]*campaign.Inoculation, len(g.records))
	copy(snapshot, g.records)
	return snapshot, true
}

// AllInOrder returns a snapshot of every record, oldest first.
func (l *Log) AllInOrder() []*campaign.Inoculation {
	snapshot := make([]*campaign.Inoculation, len(l.all))
	copy(snapshot, l.all)
	return snapshot
}

// Criteria selects records for deletion. User must match exactly; Date and
// Batch are wildcards when unset.
type Criteria struct {
	User  string
	Date  *campaign.Date
	Batch string
}

func (c Criteria) matches(rec *campaign.Inoculation) bool {
	if rec.User != c.User {
		return false
	}
	if c.Date != nil && rec.Date != *c.Date {
		return false
	}
	if c.Batch != "" && rec.Batch != c.Batch {
		return false
	}
	return true
}

// Delete removes every record matching c from the global log and from the
// owning user's group, returning how many were removed. Existence of the
// user or batch named by c is the caller's concern.
func (l *Log) Delete(c Criteria) int {
	removed := 0
	kept := l.all[:0]
	for _, rec := range l.all {
		if !c.matches(rec) {
			kept = append(kept, rec)
			continue
		}
		if g, ok := l.byUser.Lookup(rec.User); ok {
			g.remove(rec.ID)
		}
		removed++
	}
	// Clear the tail so dropped records are not retained by the backing array.
	for i := len(kept); i < len(l.all); i++ {
		l.all[i] = nil
	}
	l.all = kept
	return removed
}
