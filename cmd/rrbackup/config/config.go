package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"go-raceresult/webapi"
)

const (
	configFileFlag = "c"
	configFileEnv  = "RRBACKUP_CONFIG"

	serverFlag    = "s"
	serverEnv     = "RRBACKUP_SERVER"
	serverDefault = webapi.DefaultServer

	eventIDFlag = "e"
	eventIDEnv  = "RRBACKUP_EVENT_ID"

	outDirFlag    = "o"
	outDirEnv     = "RRBACKUP_OUT_DIR"
	outDirDefault = "backup"

	apiKeyEnv   = "RRBACKUP_API_KEY"
	userEnv     = "RRBACKUP_USER"
	passwordEnv = "RRBACKUP_PASSWORD"
)

var ErrNoCredentials = errors.New("no api key and no user/password configured")

type Config struct {
	Server   string
	EventID  string
	OutDir   string
	APIKey   string
	User     string
	Password string
	Timeout  time.Duration
}

// fileConfig is the TOML shape of the optional config file. Flags and
// environment variables override it.
type fileConfig struct {
	Server   string `toml:"server"`
	EventID  string `toml:"event_id"`
	OutDir   string `toml:"out_dir"`
	APIKey   string `toml:"api_key"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func Load() (*Config, error) {
	configFile := flag.String(
		configFileFlag,
		"",
		"Path to TOML config file (optional)",
	)

	server := flag.String(
		serverFlag,
		serverDefault,
		"API server host",
	)

	eventID := flag.String(
		eventIDFlag,
		"",
		"ID of the event to back up",
	)

	outDir := flag.String(
		outDirFlag,
		outDirDefault,
		"Output directory for backup files",
	)

	flag.Parse()

	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	if valStr, ok := os.LookupEnv(configFileEnv); ok {
		*configFile = valStr
	}

	cfg := &Config{
		Server:  *server,
		EventID: *eventID,
		OutDir:  *outDir,
		Timeout: webapi.DefaultTimeout,
	}

	if *configFile != "" {
		if err := applyFile(cfg, *configFile, setFlags); err != nil {
			return nil, err
		}
	}

	if valStr, ok := os.LookupEnv(serverEnv); ok {
		cfg.Server = valStr
	}

	if valStr, ok := os.LookupEnv(eventIDEnv); ok {
		cfg.EventID = valStr
	}

	if valStr, ok := os.LookupEnv(outDirEnv); ok {
		cfg.OutDir = valStr
	}

	if valStr, ok := os.LookupEnv(apiKeyEnv); ok {
		cfg.APIKey = valStr
	}

	if valStr, ok := os.LookupEnv(userEnv); ok {
		cfg.User = valStr
	}

	if valStr, ok := os.LookupEnv(passwordEnv); ok {
		cfg.Password = valStr
	}

	if cfg.EventID == "" {
		return nil, errors.New("no event ID configured")
	}

	if cfg.APIKey == "" && cfg.User == "" {
		return nil, ErrNoCredentials
	}

	return cfg, nil
}

// applyFile overlays the TOML file onto cfg. Fields set explicitly on the
// command line keep their flag values; the file fills the rest.
func applyFile(cfg *Config, path string, setFlags map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if raw.Server != "" && !setFlags[serverFlag] {
		cfg.Server = raw.Server
	}
	if raw.EventID != "" && !setFlags[eventIDFlag] {
		cfg.EventID = raw.EventID
	}
	if raw.OutDir != "" && !setFlags[outDirFlag] {
		cfg.OutDir = raw.OutDir
	}
	if raw.APIKey != "" {
		cfg.APIKey = raw.APIKey
	}
	if raw.User != "" {
		cfg.User = raw.User
	}
	if raw.Password != "" {
		cfg.Password = raw.Password
	}

	return nil
}

// Credentials returns the login form matching the configured auth method.
func (c *Config) Credentials() webapi.Credentials {
	if c.APIKey != "" {
		return webapi.Credentials{APIKey: c.APIKey}
	}
	return webapi.Credentials{User: c.User, Password: c.Password}
}
