// Package service composes the lot repository and the inoculation log into
// the operation surface the command layer consumes. The simulated current
// date is an explicit argument on every operation that needs one; the
// service itself holds no clock and no language state.
package service

import (
	"github.com/dgaranin/vaxkeeper/internal/campaign"
	"github.com/dgaranin/vaxkeeper/internal/campaign/inoculations"
	"github.com/dgaranin/vaxkeeper/internal/campaign/lots"
	"github.com/dgaranin/vaxkeeper/internal/campaign/query"
)

type Service struct {
	lots lots.Repository
	log  *inoculations.Log
}

func New(repo lots.Repository, log *inoculations.Log) *Service {
	return &Service{lots: repo, log: log}
}

// RegisterLot records a new vaccine lot. The caller has already validated
// batch and name syntax, the plausibility of the validation date and that
// doses > 0; the store only rejects duplicate batches.
func (s *Service) RegisterLot(batch, name string, validation campaign.Date, doses int) (*campaign.Lot, error) {
	return s.lots.Register(batch, name, validation, doses)
}

// LotCount returns the number of registrations ever accepted.
func (s *Service) LotCount() int {
	return s.lots.Count()
}

// ListLots returns every live lot sorted by validation date, then batch.
func (s *Service) ListLots() []*campaign.Lot {
	snapshot := s.lots.All()
	query.SortLots(snapshot)
	return snapshot
}

// ListLotsByName returns the lots of one vaccine in listing order, or
// campaign.ErrNoSuchVaccine when the name has no live lot.
func (s *Service) ListLotsByName(name string) ([]*campaign.Lot, error) {
	group := s.lots.FindByName(name)
	if len(group) == 0 {
		return nil, campaign.ErrNoSuchVaccine
	}
	query.SortLots(group)
	return group, nil
}

// Administer gives user one dose of the named vaccine on day now. The dose
// comes from the usable lot with the earliest validation date. It fails with
// campaign.ErrAlreadyVaccinated when the user already received that vaccine
// on the same day, and with campaign.ErrExhaustedLot when no usable lot is
// left. Nothing is mutated on a rejected administration.
func (s *Service) Administer(user, vaccine string, now campaign.Date) (*campaign.Inoculation, error) {
	if s.vaccinatedOn(user, vaccine, now) {
		return nil, campaign.ErrAlreadyVaccinated
	}

	lot := query.OldestUsable(s.lots.FindByName(vaccine), now)
	if lot == nil {
		return nil, campaign.ErrExhaustedLot
	}

	if err := s.lots.ConsumeDose(lot); err != nil {
		return nil, err
	}
	return s.log.Record(user, lot.Batch, now), nil
}

// vaccinatedOn reports whether the user already holds a dose of the named
// vaccine administered on day. The record's batch is resolved through the
// batch index; batches of removed lots stay resolvable, so a removed lot
// still blocks a second same-day dose of its vaccine.
func (s *Service) vaccinatedOn(user, vaccine string, day campaign.Date) bool {
	recs, ok := s.log.ByUser(user)
	if !ok {
		return false
	}
	for _, rec := range recs {
		if rec.Date != day {
			continue
		}
		if lot, ok := s.lots.FindByBatch(rec.Batch); ok && lot.Name == vaccine {
			return true
		}
	}
	return false
}

// ListInoculations returns every administered dose, oldest first.
func (s *Service) ListInoculations() []*campaign.Inoculation {
	return s.log.AllInOrder()
}

// ListInoculationsByUser returns one user's doses in administration order,
// or campaign.ErrNoSuchUser when the user has no live record.
func (s *Service) ListInoculationsByUser(user string) ([]*campaign.Inoculation, error) {
	recs, ok := s.log.ByUser(user)
	if !ok {
		return nil, campaign.ErrNoSuchUser
	}
	return recs, nil
}

// RemoveLot takes a lot out of circulation and returns the number of doses
// it had already dispensed. An unused lot is physically deleted
// (deleted == true); a used one is kept, marked removed and clamped.
func (s *Service) RemoveLot(batch string) (used int, deleted bool, err error) {
	lot, ok := s.lots.FindByBatch(batch)
	if !ok {
		return 0, false, campaign.ErrNoSuchBatch
	}
	used = lot.DosesUsed
	deleted, err = s.lots.Remove(batch)
	return used, deleted, err
}

// DeleteInoculations removes every record matching c and returns the count.
// It fails with campaign.ErrNoSuchUser when c.User has no live record and
// with campaign.ErrNoSuchBatch when a batch filter names an unknown lot.
// Lot dose counters are deliberately left alone: doses already given stay
// given.
func (s *Service) DeleteInoculations(c inoculations.Criteria) (int, error) {
	if _, ok := s.log.ByUser(c.User); !ok {
		return 0, campaign.ErrNoSuchUser
	}
	if c.Batch != "" {
		if _, ok := s.lots.FindByBatch(c.Batch); !ok {
			return 0, campaign.ErrNoSuchBatch
		}
	}
	return s.log.Delete(c), nil
}
