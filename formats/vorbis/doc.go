// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into the toolkit's Source
// interface using github.com/jfreymuth/oggvorbis.
//
// Output is interleaved float32 in [-1.0, 1.0] with the file's native
// channel count and sample rate. Encoding is not supported.
package vorbis
