// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the calculator settings from a TOML file.
package config

import (
	tml "github.com/BurntSushi/toml"
)

// Config calculator settings
type Config struct {
	// Title name shown by the interactive prompt
	Title string
	// Base radix used for input and output, only 16 is supported
	Base int
	// Uppercase render results with uppercase hex characters
	Uppercase bool
	// LogLevel console log level: crit error warn info debug
	LogLevel string
}

// Default returns the built-in settings: hexadecimal, uppercase output,
// error-level logging.
func Default() *Config {
	return &Config{
		Title:     "intitan",
		Base:      16,
		Uppercase: true,
		LogLevel:  "error",
	}
}

// Load decodes a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := tml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
