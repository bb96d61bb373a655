// Package lots owns every vaccine lot record and keeps its three access
// paths consistent: the unique batch index, the per-vaccine-name groups, and
// the registration order used for full listings.
package lots

import "github.com/dgaranin/vaxkeeper/internal/campaign"

// Repository describes lookup and mutation operations on vaccine lots.
// Returned records stay valid until the lot is physically deleted; callers
// must not mutate them directly.
type Repository interface {
	// Register creates a lot and links it into every index. It fails with
	// campaign.ErrDuplicateBatch when the batch is already present, including
	// batches of removed-but-not-deleted lots. Syntax and plausibility of the
	// arguments are the caller's responsibility.
	Register(batch, name string, validation campaign.Date, doses int) (*campaign.Lot, error)

	// FindByBatch returns the lot with the given batch identifier.
	FindByBatch(batch string) (*campaign.Lot, bool)

	// FindByName returns a snapshot of the lots sharing a vaccine name, in
	// group storage order. Callers needing a deterministic order sort the
	// snapshot themselves.
	FindByName(name string) []*campaign.Lot

	// ConsumeDose draws one dose from the lot. It fails with
	// campaign.ErrExhaustedLot when the lot is removed or has no dose left,
	// leaving the lot untouched.
	ConsumeDose(lot *campaign.Lot) error

	// Remove takes the lot out of circulation. An unused lot is detached from
	// every index and deleted (deleted == true); a lot with consumed doses is
	// marked removed and clamped so no further dose can be drawn. Fails with
	// campaign.ErrNoSuchBatch for an unknown batch.
	Remove(batch string) (deleted bool, err error)

	// All returns a snapshot of every live lot in registration order.
	All() []*campaign.Lot

	// Count returns the number of registrations ever accepted. Removal does
	// not decrease it; the count backs the campaign-wide capacity limit.
	Count() int
}
