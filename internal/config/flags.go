package config

import (
	"flag"
	"os"
	"time"

	"fitlife/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file (default from Config)
//	-i int      snapshot interval in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the SQLite database file")
	snapshotInterval := fs.Int("i", int(cfg.SnapshotInterval.Seconds()), "snapshot interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SnapshotInterval = time.Duration(*snapshotInterval) * time.Second
}
