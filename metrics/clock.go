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

package metrics

import (
	"context"
	"time"

	"github.com/tilinna/clock"
)

// TimeEncodeContext is TimeEncode but reads "now" off whatever clock.Clock
// is attached to ctx (via clock.Context), falling back to the real clock
// otherwise. Tests that want deterministic duration metrics install a
// clock.Mock with clock.Context and never touch time.Now directly.
func TimeEncodeContext(ctx context.Context, start time.Time) {
	now := clock.FromContext(ctx).Now()
	EncodeDuration.Update(now.Sub(start))
	EncodeCount.Inc(1)
}
