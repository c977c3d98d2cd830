// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below; tests swap L for a buffer-backed logger.
var L = clog.New(os.Stderr)

// SetLevel adjusts the logger's level from a config string. Unknown level
// names are ignored and the current level stays in effect.
func SetLevel(level string) {
	if lvl, err := clog.ParseLevel(level); err == nil {
		L.SetLevel(lvl)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
