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

// Package metrics wires counters and timers around encode and flip
// operations onto go-ethereum/metrics's default registry, the same
// registry the rest of a go-ethereum/swarm-family process already
// reports. It mirrors the teacher's metrics.Setup: a no-op unless
// metrics.Enabled, with an optional InfluxDB exporter goroutine.
package metrics

import (
	"time"

	gethmetrics "github.com/ethereum/go-ethereum/metrics"
	"github.com/ethereum/go-ethereum/metrics/influxdb"
	"github.com/ethereum/go-ethereum/log"
)

var (
	// EncodeCount counts calls to bmt.Encode / bmt.EncodeContext /
	// bmt.Writer.Finish.
	EncodeCount = gethmetrics.NewRegisteredCounter("bmt/encode/count", nil)
	// EncodeChunks counts the total number of chunks hashed across all
	// encode calls.
	EncodeChunks = gethmetrics.NewRegisteredCounter("bmt/encode/chunks", nil)
	// EncodeDuration times whole encode calls (Encode, EncodeContext,
	// Writer.Finish), flip included.
	EncodeDuration = gethmetrics.NewRegisteredTimer("bmt/encode/duration", nil)
	// FlipDuration times the pre-order flip phase.
	FlipDuration = gethmetrics.NewRegisteredTimer("bmt/flip/duration", nil)
	// PoolReserved gauges how many scratch-state bundles are currently
	// checked out, summed over every bmt scratch pool.
	PoolReserved = gethmetrics.NewRegisteredGauge("bmt/pool/reserved", nil)
)

// Options configures optional metrics export, mirroring the teacher's
// metrics.Options.
type Options struct {
	InfluxDBEndpoint string
	InfluxDBDatabase string
	InfluxDBUsername string
	InfluxDBPassword string
	InfluxDBTags     map[string]string
	EnableExport     bool
}

// Setup starts background collection and, if requested, an InfluxDB
// exporter. It is a no-op when go-ethereum/metrics collection is
// globally disabled (gethmetrics.Enabled == false), exactly like the
// teacher's metrics.Setup.
func Setup(o Options) {
	if !gethmetrics.Enabled {
		return
	}
	log.Info("enabling bmt metrics collection")
	go gethmetrics.CollectProcessMetrics(4 * time.Second)

	if o.EnableExport {
		log.Info("enabling bmt metrics export to InfluxDB")
		go influxdb.InfluxDBWithTags(
			gethmetrics.DefaultRegistry,
			10*time.Second,
			o.InfluxDBEndpoint,
			o.InfluxDBDatabase,
			o.InfluxDBUsername,
			o.InfluxDBPassword,
			"bmt.",
			o.InfluxDBTags,
		)
	}
}

// TimeEncode records a duration sample for a completed Encode/Writer
// lifecycle. Call via: `defer metrics.TimeEncode(time.Now())`.
func TimeEncode(start time.Time) {
	EncodeDuration.UpdateSince(start)
	EncodeCount.Inc(1)
}
