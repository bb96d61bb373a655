package config

import (
	"flag"
	"os"

	"github.com/dgaranin/vaxkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-l string   message language, "en" or "pt" (default from Config)
//	-s string   initial simulated date, dd-mm-yyyy (default from Config)
//
// The function filters os.Args to the flags it owns, using flagx.FilterArgs,
// so it does not interfere with the JSON-config flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Language, "l", cfg.Language, "message language (en or pt)")
	fs.StringVar(&cfg.StartDate, "s", cfg.StartDate, "initial simulated date (dd-mm-yyyy)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
