package config

import (
	"flag"
	"os"

	"github.com/Zestathon/payorbit/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-s string   path to the local state database (default from Config)
//	-e string   export output directory (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "path to the local state database")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export output directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
