// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// legacyEnv holds the variable names used by earlier deployments of the
// service. They are mapped onto [StructuredConfig] with the lowest priority
// so that the structured names always win.
type legacyEnv struct {
	JWTSecret string `env:"JWT_SECRET"`
	DBURI     string `env:"DB_URI"`
	Port      string `env:"PORT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseLegacyEnv reads JWT_SECRET, DB_URI and PORT. PORT is turned into a
// listen address on all interfaces.
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: legacy.JWTSecret,
		},
		Storage: Storage{
			DB: DB{DSN: legacy.DBURI},
		},
	}

	if port := strings.TrimSpace(legacy.Port); port != "" {
		cfg.Server.HTTPAddress = ":" + strings.TrimPrefix(port, ":")
	}

	return cfg, nil
}

// loadDotEnv loads a .env file into the process environment with
// godotenv. Variables that are already set are not overwritten.
// A missing file is silently ignored.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s file: %w", path, err)
	}

	return nil
}
