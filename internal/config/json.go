package config

import (
	"encoding/json"
	"os"
	"time"

	"fitlife/internal/flagx"
	"fitlife/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5m"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN      string         `json:"database_dsn"`
	SnapshotInterval timex.Duration `json:"snapshot_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when neither is set, no JSON is loaded. Read or unmarshal errors panic,
// matching the fail-fast behavior of startup configuration.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SnapshotInterval.Duration != 0 {
		cfg.SnapshotInterval = time.Duration(jc.SnapshotInterval.Duration)
	}
}
