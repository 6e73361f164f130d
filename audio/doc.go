// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming half of the toolkit: a pull-based
// Source interface over interleaved float32 samples, a decoder Registry, and
// two processors that chain onto any Source.
//
// MonoMixer averages channels down to one:
//
//	mono := audio.NewMonoMixer(src)
//
// Resampler converts the sample rate using cubic interpolation:
//
//	res := audio.NewResampler(src, 16000)
//
// Samples are float32 in [-1, 1]; io.EOF from ReadSamples marks the end of
// the stream. The in-memory counterpart of this pipeline is the Buffer type
// in formats/wav, which can be viewed as a Source or collected from one.
package audio
