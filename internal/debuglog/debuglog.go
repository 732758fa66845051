// Package debuglog gates verbose pipeline logging behind the
// SPRITE_TOOLS_LOG_LEVEL environment variable.
package debuglog

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// EnvVar names the environment variable that enables debug output.
const EnvVar = "SPRITE_TOOLS_LOG_LEVEL"

var enabled atomic.Bool

func init() {
	enabled.Store(os.Getenv(EnvVar) == "debug")
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled overrides the environment setting, e.g. from a --debug flag.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Printf logs through the standard logger when debug logging is on.
func Printf(format string, args ...interface{}) {
	if !enabled.Load() {
		return
	}
	log.Output(2, fmt.Sprintf(format, args...))
}
