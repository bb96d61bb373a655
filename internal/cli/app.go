// Package cli implements the vaxkeeper command loop: a line-oriented REPL
// over stdin whose single-letter commands drive the campaign store. The
// package owns everything the store treats as external: argument parsing,
// date-string parsing, bilingual diagnostics and the simulated current date.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dgaranin/vaxkeeper/internal/campaign"
	"github.com/dgaranin/vaxkeeper/internal/campaign/inoculations"
	"github.com/dgaranin/vaxkeeper/internal/campaign/lots"
	"github.com/dgaranin/vaxkeeper/internal/campaign/service"
	"github.com/dgaranin/vaxkeeper/internal/config"
	"github.com/dgaranin/vaxkeeper/internal/logging"
)

type App struct {
	cfg    *config.Config
	logger logging.Logger
	svc    *service.Service
	msg    *Messages

	// now is the simulated current date; it only moves forward.
	now campaign.Date

	in  io.Reader
	out io.Writer
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	start, ok := parseDate(cfg.StartDate)
	if !ok || !start.Valid() {
		return nil, fmt.Errorf("invalid start date %q", cfg.StartDate)
	}

	repo := lots.NewMemoryRepository(cfg.HashTableSize)
	svc := service.New(repo, inoculations.NewLog(cfg.HashTableSize))

	return &App{
		cfg:    cfg,
		logger: logger,
		svc:    svc,
		msg:    CatalogFor(cfg.Language),
		now:    start,
		in:     os.Stdin,
		out:    os.Stdout,
	}, nil
}

// Run processes commands from stdin until the quit command or EOF.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "starting command loop",
		"language", a.cfg.Language, "date", a.now.String(), "max_lots", a.cfg.MaxLots)
	a.runREPL(ctx)
	a.logger.Info(ctx, "command loop finished")
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printLot(l *campaign.Lot) {
	a.printf("%s %s %s %d %d\n", l.Name, l.Batch, l.Validation, l.Available(), l.DosesUsed)
}

func (a *App) printInoculation(rec *campaign.Inoculation) {
	a.printf("%s %s %s\n", rec.User, rec.Batch, rec.Date)
}
