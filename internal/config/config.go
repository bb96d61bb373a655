package config

// Defaults mirror the classic campaign setup: English messages, 1009 hash
// buckets, a 1000-lot capacity and a simulation starting on 01-01-2025.
const (
	DefaultLanguage      = "en"
	DefaultHashTableSize = 1009
	DefaultMaxLots       = 1000
	DefaultStartDate     = "01-01-2025"
)

// Config holds runtime settings for the vaxkeeper CLI.
//
// Fields:
//   - Language: message language, "en" or "pt".
//   - HashTableSize: bucket count of the store's hash indexes.
//   - MaxLots: how many lot registrations the campaign accepts in total.
//   - StartDate: initial simulated date, dd-mm-yyyy.
type Config struct {
	Language      string
	HashTableSize int
	MaxLots       int
	StartDate     string
}

// LoadDefaults populates c with the default settings.
func (c *Config) LoadDefaults() {
	c.Language = DefaultLanguage
	c.HashTableSize = DefaultHashTableSize
	c.MaxLots = DefaultMaxLots
	c.StartDate = DefaultStartDate
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
