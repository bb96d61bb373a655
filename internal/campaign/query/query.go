// Package query provides the deterministic orderings used by listings. The
// lot order is total, so repeated listings of an unchanged store are always
// byte-identical.
package query

import (
	"slices"
	"strings"

	"github.com/dgaranin/vaxkeeper/internal/campaign"
)

// CompareLots orders lots by validation date ascending, then by batch
// identifier ascending (byte comparison). Batches are unique, so the order
// is total.
func CompareLots(a, b *campaign.Lot) int {
	if c := a.Validation.Compare(b.Validation); c != 0 {
		return c
	}
	return strings.Compare(a.Batch, b.Batch)
}

// SortLots sorts a snapshot of lot references in place into listing order.
func SortLots(lots []*campaign.Lot) {
	slices.SortFunc(lots, CompareLots)
}

// OldestUsable returns the lot a dose should be drawn from on day now: among
// the usable lots of the group, the one with the earliest validation date,
// ties broken by smallest batch. It returns nil when no lot qualifies. The
// scan is linear; name groups are small relative to the store.
func OldestUsable(group []*campaign.Lot, now campaign.Date) *campaign.Lot {
	var best *campaign.Lot
	for _, lot := range group {
		if !lot.Usable(now) {
			continue
		}
		if best == nil || CompareLots(lot, best) < 0 {
			best = lot
		}
	}
	return best
}
