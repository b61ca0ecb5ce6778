package config

import "time"

// Config holds runtime settings for the FitLife client.
//
// Fields:
//   - DatabaseDSN: path to the local SQLite database file.
//   - SnapshotInterval: how often the background watcher archives today's
//     step total while a user is logged in.
type Config struct {
	DatabaseDSN      string
	SnapshotInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "fitlife.db"
	c.SnapshotInterval = 5 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
