// Package campaign defines the entity types, date arithmetic, syntax
// validators and sentinel errors shared by the vaccination campaign store.
// Repositories own the records; callers read them through repository
// operations and must not mutate them directly.
package campaign

// Lot is one production batch of a vaccine. The batch identifier is unique
// across the store; several lots may share a vaccine name.
//
// Invariants maintained by the lot repository: 0 <= DosesUsed <= Doses at
// all times, and once Removed is set, Doses == DosesUsed so no further dose
// can be drawn.
type Lot struct {
	Batch      string
	Name       string
	Validation Date
	Doses      int
	DosesUsed  int
	Removed    bool
}

// Available returns the number of doses still unconsumed.
func (l *Lot) Available() int {
	return l.Doses - l.DosesUsed
}

// Usable reports whether one dose may be drawn from the lot on the given
// day: not removed, not exhausted, and not past its validation date.
func (l *Lot) Usable(now Date) bool {
	return !l.Removed && l.DosesUsed < l.Doses && !l.Validation.Before(now)
}

// Inoculation records one administered dose. Records are immutable once
// created. ID is a process-unique handle; the indexes detach records by ID
// rather than by pointer identity.
type Inoculation struct {
	ID    string
	User  string
	Batch string
	Date  Date
}
