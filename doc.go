// SPDX-License-Identifier: EPL-2.0

// Package wavetool reads, processes, and writes audio, with WAV as the
// native interchange format.
//
// The core type is wav.Buffer: interleaved float64 samples plus a sample
// rate, channel count, and a play-head offset. The codec in formats/wav
// decodes and encodes PCM16, PCM24, and IEEE float32 WAV files, and the
// buffer carries in-place operations (mono mixdown, peak normalisation,
// channel views).
//
// # Supported Formats
//
// Decoding is available for:
//   - WAV (PCM 16/24-bit, float 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//
// Encoding writes WAV only.
//
// # Quick Start
//
// Open decodes any supported file by extension into a wav.Buffer:
//
//	buf, err := wavetool.Open("speech.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf.MakeMono()
//	buf.Normalize(false, 0)
//	buf.Write("speech.wav", wav.FormatPCM16).Warn()
//
// # Audio Processing Pipeline
//
// For streaming work, the audio subpackage chains pull-based Sources:
//
//	src := wav.NewSource(buf)
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//	out, err := wav.Collect(mono)
//
// Decoders for every format implement audio.Decoder and register in a
// Registry, so callers can dispatch on the file extension.
package wavetool
