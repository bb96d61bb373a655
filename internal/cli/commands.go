package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dgaranin/vaxkeeper/internal/campaign"
	"github.com/dgaranin/vaxkeeper/internal/campaign/inoculations"
)

// registerLot handles "c batch date doses name": it stocks a new lot after
// validating every field in command order, so the first broken field is the
// one reported.
func (a *App) registerLot(ctx context.Context, args string) {
	batch, rest := nextToken(args)
	dateTok, rest := nextToken(rest)
	dosesTok, name := nextToken(rest)
	if batch == "" || dateTok == "" || dosesTok == "" || name == "" {
		a.printf("%s\n", a.msg.InvalidArguments)
		return
	}

	if !campaign.IsValidBatch(batch) {
		a.printf("%s\n", a.msg.InvalidBatch)
		return
	}
	if !campaign.IsValidName(name) {
		a.printf("%s\n", a.msg.InvalidName)
		return
	}
	validation, ok := parseDate(dateTok)
	if !ok || !validation.Valid() || validation.Before(a.now) {
		a.printf("%s\n", a.msg.InvalidDate)
		return
	}
	doses, err := strconv.Atoi(dosesTok)
	if err != nil || doses <= 0 {
		a.printf("%s\n", a.msg.InvalidQuantity)
		return
	}
	if a.svc.LotCount() >= a.cfg.MaxLots {
		a.printf("%s\n", a.msg.TooManyVaccines)
		return
	}

	lot, err := a.svc.RegisterLot(batch, name, validation, doses)
	if err != nil {
		a.printf("%s\n", a.msg.DuplicateBatch)
		return
	}

	a.logger.Info(ctx, "lot registered",
		"batch", lot.Batch, "name", lot.Name, "doses", lot.Doses)
	a.printf("%s\n", lot.Batch)
}

// listLots handles "l [name ...]": with no arguments it lists every lot,
// otherwise the lots of each named vaccine in turn.
func (a *App) listLots(args string) {
	if args == "" {
		for _, lot := range a.svc.ListLots() {
			a.printLot(lot)
		}
		return
	}

	for _, name := range strings.Fields(args) {
		group, err := a.svc.ListLotsByName(name)
		if err != nil {
			a.printf(a.msg.NoSuchVaccinef+"\n", name)
			continue
		}
		for _, lot := range group {
			a.printLot(lot)
		}
	}
}

// advanceDate handles "t [date]": it prints the current date, moving it
// forward first when a date is given. Time never runs backwards.
func (a *App) advanceDate(args string) {
	if args != "" {
		d, ok := parseDate(args)
		if !ok || !d.Valid() || d.Before(a.now) {
			a.printf("%s\n", a.msg.InvalidDate)
			return
		}
		a.now = d
	}
	a.printf("%s\n", a.now)
}

// applyDose handles "a user vaccine": it administers one dose from the
// usable lot with the earliest validation date and prints its batch.
func (a *App) applyDose(ctx context.Context, args string) {
	user, rest, ok := extractUser(args)
	vaccine, _ := nextToken(rest)
	if !ok || user == "" || vaccine == "" {
		a.printf("%s\n", a.msg.InvalidArguments)
		return
	}

	rec, err := a.svc.Administer(user, vaccine, a.now)
	switch {
	case errors.Is(err, campaign.ErrAlreadyVaccinated):
		a.printf("%s\n", a.msg.AlreadyVaccinated)
		return
	case err != nil:
		a.printf("%s\n", a.msg.NoStock)
		return
	}

	a.logger.Info(ctx, "dose administered",
		"user", rec.User, "vaccine", vaccine, "batch", rec.Batch)
	a.printf("%s\n", rec.Batch)
}

// listInoculations handles "u [user]": every administered dose in
// chronological order, or one user's doses.
func (a *App) listInoculations(args string) {
	user, ok := extractUserArg(args)
	if !ok {
		for _, rec := range a.svc.ListInoculations() {
			a.printInoculation(rec)
		}
		return
	}

	recs, err := a.svc.ListInoculationsByUser(user)
	if err != nil {
		a.printf(a.msg.NoSuchUserf+"\n", user)
		return
	}
	for _, rec := range recs {
		a.printInoculation(rec)
	}
}

// removeLot handles "r batch": it takes the lot out of circulation and
// prints the number of doses it had already dispensed.
func (a *App) removeLot(ctx context.Context, args string) {
	batch, _ := nextToken(args)
	if batch == "" {
		a.printf("%s\n", a.msg.MissingBatch)
		return
	}

	used, deleted, err := a.svc.RemoveLot(batch)
	if err != nil {
		a.printf(a.msg.NoSuchBatchf+"\n", batch)
		return
	}

	a.logger.Info(ctx, "lot removed", "batch", batch, "deleted", deleted)
	a.printf("%d\n", used)
}

// deleteInoculations handles "d user [date [batch]]": it erases the
// matching records and prints how many were removed. An unclosed quote in
// the user name means no user was named, so nothing matches.
func (a *App) deleteInoculations(ctx context.Context, args string) {
	user, rest, ok := extractUser(args)
	if !ok {
		return
	}

	crit := inoculations.Criteria{User: user}
	if rest != "" {
		dateTok, after := nextToken(rest)
		d, parsed := parseDate(dateTok)
		if !parsed || !d.Valid() || a.now.Before(d) {
			a.printf("%s\n", a.msg.InvalidDate)
			return
		}
		crit.Date = &d
		crit.Batch, _ = nextToken(after)
	}

	n, err := a.svc.DeleteInoculations(crit)
	switch {
	case errors.Is(err, campaign.ErrNoSuchUser):
		a.printf(a.msg.NoSuchUserf+"\n", user)
		return
	case errors.Is(err, campaign.ErrNoSuchBatch):
		a.printf(a.msg.NoSuchBatchf+"\n", crit.Batch)
		return
	}

	a.logger.Info(ctx, "inoculation records deleted", "user", user, "count", n)
	a.printf("%d\n", n)
}
