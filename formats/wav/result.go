// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
)

// Code classifies the outcome of a codec operation.
type Code int

const (
	// OK means the operation succeeded.
	OK Code = iota
	// IOError means the file could not be opened or accessed.
	IOError
	// FormatError means the input is not RIFF/WAVE, a required chunk is
	// missing, or the format descriptor is inconsistent.
	FormatError
	// Unsupported means the file is well-formed but uses a sub-format
	// outside the three recognised encodings.
	Unsupported
	// WeirdConfig means caller-supplied buffer parameters violate the
	// encoder preconditions.
	WeirdConfig
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case IOError:
		return "io error"
	case FormatError:
		return "format error"
	case Unsupported:
		return "unsupported"
	case WeirdConfig:
		return "weird config"
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Result is the tagged outcome of an encode or decode. Errors are reported,
// not thrown: every operation returns a Result and stores it on the Buffer,
// leaving the instance inspectable.
type Result struct {
	Code   Code
	Reason string
}

var resultOK = Result{Code: OK}

func ioError(reason string) Result     { return Result{Code: IOError, Reason: reason} }
func formatError(reason string) Result { return Result{Code: FormatError, Reason: reason} }
func unsupported(reason string) Result { return Result{Code: Unsupported, Reason: reason} }
func weirdConfig(reason string) Result { return Result{Code: WeirdConfig, Reason: reason} }

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Code == OK
}

// Err returns nil on success, otherwise the Result itself as an error.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return r
}

// Error implements the error interface for non-OK results.
func (r Result) Error() string {
	if r.Reason == "" {
		return r.Code.String()
	}
	return r.Code.String() + ": " + r.Reason
}

// Warn writes the reason to stderr when the Result is not OK and returns the
// Result unchanged, so it can be chained at call sites.
func (r Result) Warn() Result {
	return r.WarnTo(os.Stderr)
}

// WarnTo is Warn with a caller-chosen diagnostic stream.
func (r Result) WarnTo(w io.Writer) Result {
	if !r.OK() {
		fmt.Fprintf(w, "WAV error: %s\n", r.Reason)
	}
	return r
}
