package config

import (
	"encoding/json"
	"os"

	"github.com/Zestathon/payorbit/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields keep the value from earlier config layers.
type JsonConfig struct {
	APIBaseURL *string `json:"api_base_url"`
	StatePath  *string `json:"state_path"`
	ExportDir  *string `json:"export_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies present fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	// Resolve file path from flags.
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

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StatePath != nil {
		cfg.StatePath = *jc.StatePath
	}
	if jc.ExportDir != nil {
		cfg.ExportDir = *jc.ExportDir
	}
}
