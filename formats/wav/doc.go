// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files and holds decoded audio in a
// Buffer of interleaved float64 samples in [-1, 1].
//
// Three on-disk sample encodings are recognised: 16-bit PCM, 24-bit packed
// PCM, and IEEE-754 32-bit float, all little-endian. Anything else is
// rejected as unsupported. The decoder tolerates unknown chunks and chunk
// reordering (a data chunk before fmt is handled by a seek-back scan); the
// encoder always emits the canonical 44-byte header followed by one data
// chunk.
//
// Operations report outcomes through a tagged Result instead of plain
// errors, and the Buffer keeps the last Result for inspection:
//
//	b := wav.Open("in.wav")
//	if !b.Result.OK() {
//	    return b.Result
//	}
//	b.MakeMono()
//	b.Normalize(false, 0)
//	b.Write("out.wav", wav.FormatPCM16).Warn()
//
// Values outside [-1, +1) saturate to the extremes on PCM encode; they never
// wrap. Buffers are not safe for concurrent mutation.
package wav
