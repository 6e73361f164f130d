// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into the toolkit's Source interface using
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is normalised to float32 in
// [-1.0, 1.0]. Encoding is not supported.
package aiff
