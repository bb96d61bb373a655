package lots

import (
	"github.com/dgaranin/vaxkeeper/internal/campaign"
	"github.com/dgaranin/vaxkeeper/internal/hashx"
)

// groupInitialCap is the starting capacity of a name group; append doubles
// it on overflow.
const groupInitialCap = 4

// group collects the lots sharing one vaccine name. Order inside the group
// is not significant: removal swaps with the last element, and listings sort
// a snapshot anyway.
type group struct {
	name string
	lots []*campaign.Lot
}

func (g *group) remove(batch string) {
	for i, lot := range g.lots {
		if lot.Batch == batch {
			last := len(g.lots) - 1
			g.lots[i] = g.lots[last]
			g.lots[last] = nil
			g.lots = g.lots[:last]
			return
		}
	}
}

// MemoryRepository is the in-memory Repository implementation. It is not
// safe for concurrent use; the store is single-threaded by design.
type MemoryRepository struct {
	byBatch    *hashx.Index[*campaign.Lot]
	byName     *hashx.Index[*group]
	order      []*campaign.Lot
	registered int
}

// NewMemoryRepository returns an empty repository whose indexes use
// tableSize hash buckets.
func NewMemoryRepository(tableSize int) *MemoryRepository {
	return &MemoryRepository{
		byBatch: hashx.New[*campaign.Lot](tableSize),
		byName:  hashx.New[*group](tableSize),
	}
}

func (r *MemoryRepository) Register(batch, name string, validation campaign.Date, doses int) (*campaign.Lot, error) {
	if _, ok := r.byBatch.Lookup(batch); ok {
		return nil, campaign.ErrDuplicateBatch
	}

	lot := &campaign.Lot{
		Batch:      batch,
		Name:       name,
		Validation: validation,
		Doses:      doses,
	}

	r.byBatch.Insert(batch, lot)

	g, ok := r.byName.Lookup(name)
	if !ok {
		g = &group{name: name, lots: make([]*campaign.Lot, 0, groupInitialCap)}
		r.byName.Insert(name, g)
	}
	g.lots = append(g.lots, lot)

	r.order = append(r.order, lot)
	r.registered++
	return lot, nil
}

func (r *MemoryRepository) FindByBatch(batch string) (*campaign.Lot, bool) {
	return r.byBatch.Lookup(batch)
}

func (r *MemoryRepository) FindByName(name string) []*campaign.Lot {
	g, ok := r.byName.Lookup(name)
	if !ok || len(g.lots) == 0 {
		return nil
	}
	snapshot := make([]*campaign.Lot, len(g.lots))
	copy(snapshot, g.lots)
	return snapshot
}

func (r *MemoryRepository) ConsumeDose(lot *campaign.Lot) error {
	if lot.Removed || lot.DosesUsed >= lot.Doses {
		return campaign.ErrExhaustedLot
	}
	lot.DosesUsed++
	return nil
}

func (r *MemoryRepository) Remove(batch string) (bool, error) {
	lot, ok := r.byBatch.Lookup(batch)
	if !ok {
		return false, campaign.ErrNoSuchBatch
	}

	if lot.DosesUsed > 0 {
		lot.Removed = true
		lot.Doses = lot.DosesUsed
		return false, nil
	}

	// Unused lot: detach from the name group, the registration order and the
	// batch index. All three succeed or the lot was not registered, so the
	// indexes cannot diverge.
	if g, ok := r.byName.Lookup(lot.Name); ok {
		g.remove(batch)
	}
	for i, l := range r.order {
		if l == lot {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.byBatch.Delete(batch)
	return true, nil
}

func (r *MemoryRepository) All() []*campaign.Lot {
	snapshot := make([]*campaign.Lot, len(r.order))
	copy(snapshot, r.order)
	return snapshot
}

func (r *MemoryRepository) Count() int {
	return r.registered
}
