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

package bmt

import (
	"context"
	"testing"

	"github.com/holisticode/baotree/metrics"
)

// TestEncodeDrivesMetrics checks that Encode and EncodeContext report
// through the package-level metrics counters, not just that those metrics
// exist. Writer and the pool gauge are covered by the tests below.
func TestEncodeDrivesMetrics(t *testing.T) {
	input := fill(3*ChunkSize+1, 0x11)
	wantChunks := int64(CountChunks(uint64(len(input))))

	beforeCount := metrics.EncodeCount.Count()
	beforeChunks := metrics.EncodeChunks.Count()

	Encode(input)

	if got := metrics.EncodeCount.Count(); got != beforeCount+1 {
		t.Fatalf("EncodeCount after Encode = %d, want %d", got, beforeCount+1)
	}
	if got := metrics.EncodeChunks.Count(); got != beforeChunks+wantChunks {
		t.Fatalf("EncodeChunks after Encode = %d, want %d", got, beforeChunks+wantChunks)
	}

	beforeCount = metrics.EncodeCount.Count()
	EncodeContext(context.Background(), input)
	if got := metrics.EncodeCount.Count(); got != beforeCount+1 {
		t.Fatalf("EncodeCount after EncodeContext = %d, want %d", got, beforeCount+1)
	}
}

func TestWriterDrivesMetrics(t *testing.T) {
	input := fill(3*ChunkSize+1, 0x22)

	beforeCount := metrics.EncodeCount.Count()
	beforeChunks := metrics.EncodeChunks.Count()
	beforeFlip := metrics.FlipDuration.Count()

	sink := newMemSink(int(EncodedSize(uint64(len(input)))))
	w := NewWriter(sink)
	if _, err := w.Write(input); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if got := metrics.EncodeCount.Count(); got != beforeCount+1 {
		t.Fatalf("EncodeCount after Writer.Finish = %d, want %d", got, beforeCount+1)
	}
	if got := metrics.EncodeChunks.Count(); got <= beforeChunks {
		t.Fatalf("EncodeChunks after Writer.Finish = %d, want > %d", got, beforeChunks)
	}
	if got := metrics.FlipDuration.Count(); got != beforeFlip+1 {
		t.Fatalf("FlipDuration.Count() after Writer.Finish = %d, want %d", got, beforeFlip+1)
	}
}

func TestPoolReserveReleaseDrivesGauge(t *testing.T) {
	before := metrics.PoolReserved.Value()

	p := newStatePool(2)
	s := p.reserve()
	if got := metrics.PoolReserved.Value(); got != before+1 {
		t.Fatalf("PoolReserved after reserve = %d, want %d", got, before+1)
	}
	p.release(s)
	if got := metrics.PoolReserved.Value(); got != before {
		t.Fatalf("PoolReserved after release = %d, want %d", got, before)
	}
}
