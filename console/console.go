// SPDX-License-Identifier: EPL-2.0

// Package console exposes ANSI escape strings for diagnostic output. Every
// string is empty when colour is unsupported, so callers can splice them
// into output unconditionally:
//
//	fmt.Fprintf(os.Stderr, "%serror:%s %v\n", console.Red, console.Reset, err)
//
// Colour is considered unsupported when TERM is unset or "dumb", or when
// stderr is not a terminal. The probe runs once at package load.
package console

import (
	"os"

	"golang.org/x/term"
)

// Enabled reports whether the escape strings are live.
var Enabled = supported()

func supported() bool {
	envTerm, ok := os.LookupEnv("TERM")
	if !ok || envTerm == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func escape(code string) string {
	if !Enabled {
		return ""
	}
	return "\x1b[" + code + "m"
}

// Display attributes.
var (
	Reset      = escape("0")
	Bright     = escape("1")
	Dim        = escape("2")
	Underscore = escape("4")
	Blink      = escape("5")
	Reverse    = escape("7")
	Hidden     = escape("8")
)

// Foreground colours.
var (
	Black   = escape("30")
	Red     = escape("31")
	Green   = escape("32")
	Yellow  = escape("33")
	Blue    = escape("34")
	Magenta = escape("35")
	Cyan    = escape("36")
	White   = escape("37")
)

// Background colours.
var (
	BgBlack   = escape("40")
	BgRed     = escape("41")
	BgGreen   = escape("42")
	BgYellow  = escape("43")
	BgBlue    = escape("44")
	BgMagenta = escape("45")
	BgCyan    = escape("46")
	BgWhite   = escape("47")
)
