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

import "fmt"

// debugAssertions gates invariant checks that are programming-bug
// detectors, not user-visible errors (spec.md §7). Off by default; flip it
// on in development builds or tests that want the extra checking.
var debugAssertions = false

// assertf panics with a formatted message if debugAssertions is enabled
// and the condition does not hold. A failing assertion here always means a
// bug in this package, never bad input: every finite input has a valid
// encoding.
func assertf(cond bool, format string, args ...interface{}) {
	if debugAssertions && !cond {
		panic("bmt: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
