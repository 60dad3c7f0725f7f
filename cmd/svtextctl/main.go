// Command svtextctl is a small demonstration CLI over the text/diff/
// waiver/format/equiv packages, built with a lexsim-based illustrative
// lexer/parser rather than a real SystemVerilog front end. Grounded on
// the teacher's cli/main.go + cli/cmd package split, flattened into one
// package since this CLI's surface is small enough not to need the
// teacher's multi-file cmd package.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := Execute(); err != nil {
		logrus.WithError(err).Error("svtextctl failed")
		os.Exit(1)
	}
}
