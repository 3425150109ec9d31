package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-raceresult/webapi"
)

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
server = "test.example.com"
event_id = "123456"
api_key = "key-1"
`), 0o644))

	cfg := &Config{
		Server: webapi.DefaultServer,
		OutDir: "backup",
	}
	require.NoError(t, applyFile(cfg, path, nil))

	assert.Equal(t, "test.example.com", cfg.Server)
	assert.Equal(t, "123456", cfg.EventID)
	assert.Equal(t, "key-1", cfg.APIKey)
	assert.Equal(t, "backup", cfg.OutDir)
}

func TestApplyFileKeepsFlagValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
server = "file.example.com"
event_id = "file-event"
out_dir = "file-dir"
api_key = "key-1"
`), 0o644))

	cfg := &Config{
		Server:  "flag.example.com",
		EventID: "flag-event",
		OutDir:  "backup",
	}
	setFlags := map[string]bool{serverFlag: true, eventIDFlag: true}
	require.NoError(t, applyFile(cfg, path, setFlags))

	assert.Equal(t, "flag.example.com", cfg.Server)
	assert.Equal(t, "flag-event", cfg.EventID)
	assert.Equal(t, "file-dir", cfg.OutDir)
	assert.Equal(t, "key-1", cfg.APIKey)
}

func TestApplyFileMissing(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, applyFile(cfg, filepath.Join(t.TempDir(), "nope.toml"), nil))
}

func TestApplyFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("server = [broken"), 0o644))

	cfg := &Config{}
	assert.Error(t, applyFile(cfg, path, nil))
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected webapi.Credentials
	}{
		{
			name:     "api key preferred",
			cfg:      Config{APIKey: "key-1", User: "u", Password: "p"},
			expected: webapi.Credentials{APIKey: "key-1"},
		},
		{
			name:     "user and password",
			cfg:      Config{User: "u", Password: "p"},
			expected: webapi.Credentials{User: "u", Password: "p"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.cfg.Credentials())
		})
	}
}
