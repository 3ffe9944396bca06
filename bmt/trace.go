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
	"encoding/hex"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	olog "github.com/opentracing/opentracing-go/log"

	"github.com/holisticode/baotree/metrics"
)

// EncodeContext wraps Encode with an OpenTracing span carrying the input
// length and resulting root hash, in the same request-scoped span style
// storage.netstore uses around remote chunk fetches (osp.LogFields(...)).
// Tracing only observes; it has no effect on the computed hash or bytes.
//
// Timing goes through metrics.TimeEncodeContext rather than Encode's own
// metrics.TimeEncode, so a ctx carrying a clock.Mock (via clock.Context)
// produces deterministic duration samples in tests; encodeWithScratch is
// called directly to avoid double-counting EncodeDuration/EncodeCount.
func EncodeContext(ctx context.Context, input []byte) (Hash, []byte) {
	span, _ := opentracing.StartSpanFromContext(ctx, "bmt.Encode")
	defer span.Finish()
	span.LogFields(olog.Int("length", len(input)))

	start := time.Now()
	defer func() { metrics.TimeEncodeContext(ctx, start) }()

	s := defaultPool.reserve()
	defer defaultPool.release(s)
	root, encoded := encodeWithScratch(input, s)
	span.LogFields(olog.String("root", hex.EncodeToString(root[:])))
	return root, encoded
}
