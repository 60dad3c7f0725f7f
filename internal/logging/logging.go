// Package logging reproduces the teacher's env-gated debug print
// (sqlparser/internal/utils/print.go's DPrint), used by the text-structure
// core to trace integrity checks and the expansion protocol without
// pulling a structured-logging dependency into packages that otherwise
// have none.
package logging

import (
	"fmt"
	"os"
)

var _, enableDebug = os.LookupEnv("SVTEXT_DEBUG")

// Debugf writes a formatted debug line to stderr, prefixed and colorized,
// only when SVTEXT_DEBUG is set in the environment.
func Debugf(format string, a ...any) {
	if !enableDebug {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[0;36mDEBUG:\033[0m ")
	fmt.Fprintf(os.Stderr, format, a...)
}
