package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envFiles are loaded, when present, before the process environment is
// applied. Values already exported in the environment win over file values.
var envFiles = []string{".env", ".env.local"}

// parseEnv overlays Config with values from the environment. A missing
// variable keeps the value from earlier layers; env.Parse only writes
// fields whose variables are set because no envDefault tags are used.
func parseEnv(cfg *Config) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
