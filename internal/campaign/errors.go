package campaign

import "errors"

// Sentinel errors surfaced by store operations. All are recoverable for the
// caller; a rejected operation leaves the store unchanged. Match them with
// errors.Is.
var (
	// Lot repository errors.
	ErrDuplicateBatch = errors.New("duplicate batch number")
	ErrExhaustedLot   = errors.New("no stock")
	ErrNoSuchBatch    = errors.New("no such batch")
	ErrNoSuchVaccine  = errors.New("no such vaccine")

	// Inoculation errors.
	ErrAlreadyVaccinated = errors.New("already vaccinated")
	ErrNoSuchUser        = errors.New("no such user")
)
