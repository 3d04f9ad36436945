// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log sets up the console logger for the calculator harness. The
// arithmetic core itself never logs.
package log

import (
	"os"

	"github.com/inconshreveable/log15"
)

// SetLogLevel filters console output to the given level.
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(os.Stdout, log15.TerminalFormat()),
	))
}

// 缺省为 error 级别，防止打印太多日志
func getLevel(lvl string) log15.Lvl {
	switch lvl {
	case "crit":
		return log15.LvlCrit
	case "error":
		return log15.LvlError
	case "warn":
		return log15.LvlWarn
	case "info":
		return log15.LvlInfo
	case "debug":
		return log15.LvlDebug
	default:
		return log15.LvlError
	}
}
