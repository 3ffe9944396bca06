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

package log

import (
	"testing"

	gethlog "github.com/ethereum/go-ethereum/log"
)

// Setup only installs a handler on the package-global root logger, so these
// tests can't observe the chosen handler directly; they confirm Setup runs
// to completion at every verbosity/format combination and leaves the root
// logger able to log without panicking.
func TestSetupVerbosityAndFormat(t *testing.T) {
	for _, jsonOutput := range []bool{false, true} {
		for verbosity := 0; verbosity <= 5; verbosity++ {
			Setup(verbosity, jsonOutput)
			gethlog.Debug("log setup smoke test", "verbosity", verbosity, "json", jsonOutput)
		}
	}
}
