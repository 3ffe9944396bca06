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

package bootstrap

import (
	"testing"

	"github.com/holisticode/baotree/bmt"
	"github.com/holisticode/baotree/config"
)

func TestInitDefaultsNoTracing(t *testing.T) {
	cfg := config.NewConfig()
	cfg.PoolCapacity = 3

	closer, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closer.Close()

	if _, ok := closer.(nopCloser); !ok {
		t.Errorf("Init with TracingEnabled=false returned %T, want nopCloser", closer)
	}

	// Exercise the pool Init just sized: a handful of round trips should
	// succeed without blocking, regardless of capacity.
	for i := 0; i < 5; i++ {
		bmt.Encode([]byte("hello bootstrap"))
	}
}

func TestInitWithMetricsAndInfluxDB(t *testing.T) {
	cfg := config.NewConfig()
	cfg.MetricsEnabled = true
	cfg.InfluxDB = &config.InfluxDBConfig{
		Endpoint: "http://localhost:8086",
		Database: "bmt",
		Tags:     "region=us-east,host=node1",
	}

	closer, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closer.Close()
}

func TestInitWithTracing(t *testing.T) {
	cfg := config.NewConfig()
	cfg.TracingEnabled = true

	// tracing.Init with a constant sampler and no agent reachable still
	// succeeds (the Jaeger client buffers and drops spans locally), so
	// this only exercises that Init wires a non-nil, closeable Closer
	// through the TracingEnabled branch.
	closer, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if closer == nil {
		t.Fatal("Init with TracingEnabled=true returned a nil Closer")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("closer.Close(): %v", err)
	}
}
