package config

// Config holds runtime settings for the PayOrbit CLI.
//
// Fields:
//   - APIBaseURL: base address of the PayOrbit backend; all request paths
//     are relative to it.
//   - StatePath: sqlite file backing the durable credential store.
//   - ExportDir: directory exported reports are saved into.
type Config struct {
	APIBaseURL string `env:"PAYORBIT_API_URL"`
	StatePath  string `env:"PAYORBIT_STATE_PATH"`
	ExportDir  string `env:"PAYORBIT_EXPORT_DIR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.StatePath = "payorbit.db"
	c.ExportDir = "exports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a JSON file (if present), the environment, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
