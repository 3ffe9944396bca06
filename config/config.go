// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package config holds the tunables for running the bmt encoder as part
// of a larger service: how large the scratch-state pool should be, and
// whether metrics and tracing are turned on. It follows the shape of the
// teacher's api.Config — a struct with TOML tags, a NewConfig default
// constructor, and a Load that overlays a file on top of those defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/naoina/toml"
)

const (
	// DefaultPoolCapacity is how many scratch-state bundles the bmt
	// package pools by default (mirrors bmt.defaultPool's capacity).
	DefaultPoolCapacity = 8
	// DefaultLogVerbosity is a go-ethereum/log verbosity level (Crit=0
	// .. Trace=5).
	DefaultLogVerbosity = 3
)

// InfluxDBConfig configures optional InfluxDB metrics export, mirroring
// the teacher's metrics.Options field set.
type InfluxDBConfig struct {
	Endpoint string
	Database string
	Username string
	Password string `toml:"-"`
	// Tags is a comma-separated list of key=value pairs, the same format
	// cmd/swarm flags of this shape use, kept as a plain string here so
	// it round-trips through TOML without a custom marshaler.
	Tags string
}

// TagMap parses Tags into the map[string]string form metrics.Options
// expects, skipping malformed or empty entries. A nil receiver returns a
// nil map.
func (c *InfluxDBConfig) TagMap() map[string]string {
	if c == nil || c.Tags == "" {
		return nil
	}
	tags := make(map[string]string)
	for _, pair := range strings.Split(c.Tags, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			continue
		}
		tags[kv[0]] = kv[1]
	}
	return tags
}

// Config is the top-level configuration for a process embedding this
// encoder.
type Config struct {
	// PoolCapacity bounds how many scratch-state bundles bmt.Encode and
	// bmt.NewWriter keep in their shared pool.
	PoolCapacity int

	// MetricsEnabled turns on go-ethereum/metrics collection around
	// encode and flip operations.
	MetricsEnabled bool
	// TracingEnabled turns on OpenTracing spans around EncodeContext
	// calls.
	TracingEnabled bool
	// LogVerbosity is a go-ethereum/log verbosity level.
	LogVerbosity int
	// LogJSON selects structured JSON log output instead of the
	// terminal-oriented handler.
	LogJSON bool

	InfluxDB *InfluxDBConfig `toml:",omitempty"`
}

// NewConfig returns a Config populated with defaults, the same pattern as
// the teacher's api.NewConfig.
func NewConfig() *Config {
	return &Config{
		PoolCapacity:   DefaultPoolCapacity,
		MetricsEnabled: false,
		TracingEnabled: false,
		LogVerbosity:   DefaultLogVerbosity,
	}
}

// Load reads a TOML document from path and overlays it onto a default
// Config, returning the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := NewConfig()
	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating or truncating the file.
func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
