// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

// SampleFormat selects one of the three recognised on-disk sample encodings.
type SampleFormat int

const (
	// FormatInvalid is the zero value; encoding with it fails.
	FormatInvalid SampleFormat = iota
	// FormatPCM16 is signed 16-bit little-endian PCM (wire code 1).
	FormatPCM16
	// FormatPCM24 is signed 24-bit little-endian PCM, 3-byte packed (wire code 1).
	FormatPCM24
	// FormatFloat32 is IEEE-754 binary32 little-endian (wire code 3).
	FormatFloat32
)

// Wire-level format codes from the fmt chunk.
const (
	codePCM   = 1
	codeFloat = 3
)

func (f SampleFormat) String() string {
	switch f {
	case FormatPCM16:
		return "pcm16"
	case FormatPCM24:
		return "pcm24"
	case FormatFloat32:
		return "float32"
	}
	return "invalid"
}

// BytesPerSample returns the on-disk width of one sample, or 0 for
// FormatInvalid.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatPCM16:
		return 2
	case FormatPCM24:
		return 3
	case FormatFloat32:
		return 4
	}
	return 0
}

// code returns the fmt-chunk format code for f.
func (f SampleFormat) code() uint16 {
	if f == FormatFloat32 {
		return codeFloat
	}
	return codePCM
}

// resolveFormat maps a (format code, bits per sample) pair from a fmt chunk
// to a SampleFormat. Unknown combinations yield FormatInvalid.
func resolveFormat(code, bits uint16) SampleFormat {
	switch {
	case code == codePCM && bits == 16:
		return FormatPCM16
	case code == codePCM && bits == 24:
		return FormatPCM24
	case code == codeFloat && bits == 32:
		return FormatFloat32
	}
	return FormatInvalid
}

// ParseFormat maps a user-facing format name ("pcm16", "pcm24", "float32")
// to a SampleFormat. Used by command-line callers.
func ParseFormat(name string) (SampleFormat, error) {
	switch name {
	case "pcm16":
		return FormatPCM16, nil
	case "pcm24":
		return FormatPCM24, nil
	case "float32":
		return FormatFloat32, nil
	}
	return FormatInvalid, fmt.Errorf("unknown sample format %q", name)
}
