// Package log prints colored status messages to stderr for the CLI.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

// Verbose enables DebugMsg output. Commands set it from the --verbose flag.
var Verbose = false

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// DebugMsg prints a message to stderr in yellow color, but only when
// Verbose is set.
func DebugMsg(format string, a ...interface{}) {
	if !Verbose {
		return
	}

	yellow(os.Stderr, "[*] "+format, a...)
}
