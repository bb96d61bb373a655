package cli

import (
	"bufio"
	"context"
	"strings"
)

const maxLineSize = 64 * 1024

// runREPL reads one command per line until the quit command or EOF. The
// first byte of the line selects the command; the remainder, left-trimmed,
// is the argument string. Unknown commands are ignored.
func (a *App) runREPL(ctx context.Context) {
	scanner := bufio.NewScanner(a.in)
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		cmd := line[0]
		args := strings.TrimLeft(line[1:], blanks)

		switch cmd {
		case 'q':
			return
		case 'c':
			a.registerLot(ctx, args)
		case 'l':
			a.listLots(args)
		case 't':
			a.advanceDate(args)
		case 'a':
			a.applyDose(ctx, args)
		case 'u':
			a.listInoculations(args)
		case 'r':
			a.removeLot(ctx, args)
		case 'd':
			a.deleteInoculations(ctx, args)
		default:
			a.logger.Debug(ctx, "ignoring unknown command", "command", string(cmd))
		}
	}

	if err := scanner.Err(); err != nil {
		a.logger.Error(ctx, "reading input", "error", err)
	}
}
