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

// Package bootstrap wires a config.Config into the bmt, log, metrics and
// tracing packages, the way a process embedding this module would during
// startup. It has no main.go of its own — building a CLI is out of scope —
// but it is the one place that actually reads every Config field and turns
// it into calls against the packages it configures.
package bootstrap

import (
	"io"

	gethmetrics "github.com/ethereum/go-ethereum/metrics"

	"github.com/holisticode/baotree/bmt"
	"github.com/holisticode/baotree/config"
	"github.com/holisticode/baotree/log"
	"github.com/holisticode/baotree/metrics"
	"github.com/holisticode/baotree/tracing"
)

// ServiceName identifies this process to the tracing backend.
const ServiceName = "baotree"

// nopCloser is returned by Init when tracing is disabled, so callers can
// always defer-close the result without a nil check.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init applies cfg to the package-level state bmt.Encode, bmt.NewWriter,
// metrics.Setup and tracing.Init expose: it sizes the scratch-state pool,
// installs the log handler, and — only when the corresponding Config flag
// is set — turns on metrics collection and/or the Jaeger tracer.
//
// The returned io.Closer flushes and releases whatever Init started
// (currently: the tracer, if one was installed) and must be closed on
// shutdown. Init itself never fails when tracing is disabled; it only
// returns an error if building the tracer fails.
func Init(cfg *config.Config) (io.Closer, error) {
	log.Setup(cfg.LogVerbosity, cfg.LogJSON)

	bmt.SetPoolCapacity(cfg.PoolCapacity)

	if cfg.MetricsEnabled {
		gethmetrics.Enabled = true
		opts := metrics.Options{
			EnableExport: cfg.InfluxDB != nil,
		}
		if cfg.InfluxDB != nil {
			opts.InfluxDBEndpoint = cfg.InfluxDB.Endpoint
			opts.InfluxDBDatabase = cfg.InfluxDB.Database
			opts.InfluxDBUsername = cfg.InfluxDB.Username
			opts.InfluxDBPassword = cfg.InfluxDB.Password
			opts.InfluxDBTags = cfg.InfluxDB.TagMap()
		}
		metrics.Setup(opts)
	}

	if cfg.TracingEnabled {
		_, closer, err := tracing.Init(ServiceName)
		if err != nil {
			return nil, err
		}
		return closer, nil
	}
	return nopCloser{}, nil
}
