package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string
	GraceTimeout      time.Duration
	RequestTimeout    time.Duration
	ReadHeaderTimeout time.Duration
}

// fileConfig is the raw YAML shape. Durations are strings in Go duration
// syntax ("5s", "1m30s") and parsed after decoding.
type fileConfig struct {
	ListenAddr        string `yaml:"listen_addr"`
	GraceTimeout      string `yaml:"shutdown_timeout"`
	RequestTimeout    string `yaml:"request_timeout"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: os.Open: %v", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	var raw fileConfig
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&raw); err != nil {
		log.Fatalf("failed to parse config file: decoder.Decode: %v", err)
	}

	cfg := Config{
		ListenAddr:        raw.ListenAddr,
		GraceTimeout:      parseDuration("shutdown_timeout", raw.GraceTimeout),
		RequestTimeout:    parseDuration("request_timeout", raw.RequestTimeout),
		ReadHeaderTimeout: parseDuration("read_header_timeout", raw.ReadHeaderTimeout),
	}

	// Fallbacks
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":1337"
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}

	return cfg
}

func parseDuration(name, s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("failed to parse config file: bad %s: %v", name, err)
	}
	return d
}
