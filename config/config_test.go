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

package config

import (
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.PoolCapacity != DefaultPoolCapacity {
		t.Errorf("PoolCapacity = %d, want %d", cfg.PoolCapacity, DefaultPoolCapacity)
	}
	if cfg.MetricsEnabled || cfg.TracingEnabled {
		t.Errorf("metrics/tracing should default to disabled")
	}
	if cfg.InfluxDB != nil {
		t.Errorf("InfluxDB should default to nil")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := NewConfig()
	cfg.PoolCapacity = 16
	cfg.MetricsEnabled = true
	cfg.LogJSON = true
	cfg.InfluxDB = &InfluxDBConfig{Endpoint: "http://localhost:8086", Database: "bmt"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.PoolCapacity != cfg.PoolCapacity {
		t.Errorf("PoolCapacity = %d, want %d", got.PoolCapacity, cfg.PoolCapacity)
	}
	if got.MetricsEnabled != cfg.MetricsEnabled {
		t.Errorf("MetricsEnabled = %v, want %v", got.MetricsEnabled, cfg.MetricsEnabled)
	}
	if got.LogJSON != cfg.LogJSON {
		t.Errorf("LogJSON = %v, want %v", got.LogJSON, cfg.LogJSON)
	}
	if got.InfluxDB == nil || got.InfluxDB.Endpoint != cfg.InfluxDB.Endpoint {
		t.Errorf("InfluxDB.Endpoint = %+v, want %+v", got.InfluxDB, cfg.InfluxDB)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("Load on a missing file should return an error")
	}
}

func TestInfluxDBConfigTagMap(t *testing.T) {
	var nilCfg *InfluxDBConfig
	if got := nilCfg.TagMap(); got != nil {
		t.Errorf("nil receiver TagMap() = %v, want nil", got)
	}

	empty := &InfluxDBConfig{}
	if got := empty.TagMap(); got != nil {
		t.Errorf("empty Tags TagMap() = %v, want nil", got)
	}

	cfg := &InfluxDBConfig{Tags: "region=us-east,host=node1,malformed,=blank"}
	got := cfg.TagMap()
	want := map[string]string{"region": "us-east", "host": "node1"}
	if len(got) != len(want) {
		t.Fatalf("TagMap() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("TagMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
