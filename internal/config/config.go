// SPDX-License-Identifier: MIT

// Package config loads pathfinder's configuration from a YAML file and the
// environment. Environment variables override file values.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/katalvlaran/pathfinder/internal/lib/validator"
)

// Config is the process configuration.
//
// With GraphFile set the binary runs one computation and exits; otherwise
// it serves the HTTP API on HTTPServer.Address.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	Mode       string `yaml:"mode" env:"MODE" env-default:"heap" validate:"oneof=heap reference crosscheck"`
	GraphFile  string `yaml:"graph_file" env:"GRAPH_FILE"`
	Source     string `yaml:"source" env:"SOURCE" validate:"required_with=GraphFile"`
	Target     string `yaml:"target" env:"TARGET"`
	ReturnPath bool   `yaml:"return_path" env:"RETURN_PATH"`
	Undirected bool   `yaml:"undirected" env:"UNDIRECTED"`
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds listener settings.
type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080" validate:"required"`
	Timeout      time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s" validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s" validate:"gt=0"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" validate:"gt=0"`
}

// Load reads the file at path, applies environment overrides and defaults
// and validates the result. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = validator.NewWithTag("yaml").Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", op, err)
	}

	return &cfg, nil
}

// MustLoad is Load that stops the process on failure.
func MustLoad(path string) *Config {
	log.Println("reading config from file:", path)

	cfg, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}
