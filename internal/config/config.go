package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Service holds the per-service settings exposed on /health and /.
type Service struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"`
}

// Defaults carries the literal fallbacks baked into each service binary.
type Defaults struct {
	Name string
	Port int
}

// Load resolves service settings in increasing precedence: baked-in defaults,
// then an optional YAML file named by CONFIG_FILE, then the SERVICE_NAME,
// VERSION and SERVICE_PORT environment variables.
func Load(def Defaults) (Service, error) {
	cfg := Service{
		Name:    def.Name,
		Version: "1.0.0",
		Port:    def.Port,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Service{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Service{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv("VERSION"); v != "" {
		cfg.Version = v
	}
	if v := os.Getenv("SERVICE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Service{}, fmt.Errorf("invalid SERVICE_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}
