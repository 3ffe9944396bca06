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

// Package log configures the go-ethereum/log handler this module's
// bmt, config, metrics, tracing and cache packages all log through. The
// teacher imports a thin swarm-specific fork of this package
// (github.com/holisticode/swarm/log); since that fork's source wasn't
// part of the retrieved reference material, this depends on
// github.com/ethereum/go-ethereum/log directly instead of reinventing the
// wrapper.
package log

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Setup installs a go-ethereum/log root handler at the given verbosity
// (0 = Crit .. 5 = Trace): a JSON handler whenever jsonOutput is set;
// otherwise a color-capable terminal handler when stderr is a terminal and
// a plain terminal-format handler when it is not — the standard pairing of
// go-colorable/go-isatty seen across every go-ethereum-family main.go
// logging setup.
func Setup(verbosity int, jsonOutput bool) {
	var handler log.Handler
	switch {
	case jsonOutput:
		handler = log.StreamHandler(os.Stderr, log.JSONFormat())
	case isatty.IsTerminal(os.Stderr.Fd()):
		handler = log.StreamHandler(colorable.NewColorableStderr(), log.TerminalFormat(true))
	default:
		handler = log.StreamHandler(os.Stderr, log.TerminalFormat(false))
	}
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(verbosity), handler))
}
