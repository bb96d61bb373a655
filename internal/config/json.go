package config

import (
	"encoding/json"
	"os"

	"github.com/dgaranin/vaxkeeper/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values, so a partial file overrides
// only the settings it names.
type JSONConfig struct {
	Language      *string `json:"language"`
	HashTableSize *int    `json:"hash_table_size"`
	MaxLots       *int    `json:"max_lots"`
	StartDate     *string `json:"start_date"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JSONConfigFlags; when no
// path is given, nothing is loaded. Read and unmarshal errors panic, as the
// process cannot do anything useful with a broken config file.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Language != nil {
		cfg.Language = *jc.Language
	}
	if jc.HashTableSize != nil {
		cfg.HashTableSize = *jc.HashTableSize
	}
	if jc.MaxLots != nil {
		cfg.MaxLots = *jc.MaxLots
	}
	if jc.StartDate != nil {
		cfg.StartDate = *jc.StartDate
	}
}
