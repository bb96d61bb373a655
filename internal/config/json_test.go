package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestJSONOverlay(t *testing.T) {
	path := writeConfigFile(t, `{
		"language": "pt",
		"hash_table_size": 101,
		"max_lots": 50,
		"start_date": "02-02-2025"
	}`)
	withArgs(t, []string{"-c", path})

	cfg := LoadConfig()
	assert.Equal(t, "pt", cfg.Language)
	assert.Equal(t, 101, cfg.HashTableSize)
	assert.Equal(t, 50, cfg.MaxLots)
	assert.Equal(t, "02-02-2025", cfg.StartDate)
}

func TestJSONPartialFile(t *testing.T) {
	path := writeConfigFile(t, `{"language": "pt"}`)
	withArgs(t, []string{"-config", path})

	cfg := LoadConfig()
	assert.Equal(t, "pt", cfg.Language)
	assert.Equal(t, 1009, cfg.HashTableSize)
	assert.Equal(t, 1000, cfg.MaxLots)
}

func TestFlagsWinOverJSON(t *testing.T) {
	path := writeConfigFile(t, `{"language": "pt", "start_date": "02-02-2025"}`)
	withArgs(t, []string{"-c", path, "-l", "en"})

	cfg := LoadConfig()
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "02-02-2025", cfg.StartDate)
}

func TestBrokenJSONPanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	withArgs(t, []string{"-c", path})

	assert.Panics(t, func() { LoadConfig() })
}

func TestMissingFilePanics(t *testing.T) {
	withArgs(t, []string{"-c", filepath.Join(t.TempDir(), "absent.json")})

	assert.Panics(t, func() { LoadConfig() })
}
