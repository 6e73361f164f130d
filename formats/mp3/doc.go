// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into the toolkit's Source interface using
// github.com/hajimehoshi/go-mp3.
//
// Output is always interleaved stereo float32 in [-1.0, 1.0] at the file's
// native sample rate; chain audio.MonoMixer or audio.Resampler to change
// that. Encoding MP3 is not supported.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	buf, err := wav.Collect(src)       // into an in-memory buffer
//	buf.Write("out.wav", wav.FormatPCM16)
package mp3
