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

package tracing

import (
	"context"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
)

func TestInitInstallsGlobalTracer(t *testing.T) {
	tracer, closer, err := Init("tracing-test")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closer.Close()

	if tracer == nil {
		t.Fatal("Init returned a nil tracer")
	}
	if opentracing.GlobalTracer() != tracer {
		t.Error("Init did not install its tracer as the global tracer")
	}

	span := tracer.StartSpan("tracing-test-span")
	span.Finish()

	ctxSpan, ctx := opentracing.StartSpanFromContext(context.Background(), "from-context")
	if ctxSpan == nil {
		t.Error("StartSpanFromContext returned a nil span with the installed global tracer")
	}
	ctxSpan.Finish()
	_ = ctx
}
