// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"math"

	"github.com/spf13/afero"
)

// DefaultPeakLevel is the normalisation ceiling used when the caller passes
// a non-positive level.
const DefaultPeakLevel = 0.9999

// peakSeed initialises the running peak in default normalisation mode. It
// is near zero rather than zero so a silent buffer never divides by zero.
const peakSeed = 1e-30

// Buffer holds interleaved floating-point audio in [-1, 1] together with its
// format parameters and the outcome of the last encode/decode.
//
// Frame f of channel c lives at Samples[f*Channels+c]. Offset is a leading
// frame skip honoured by Length, Resize, Channel and Write; the frames before
// it stay in memory. A Buffer is not safe for concurrent mutation.
type Buffer struct {
	SampleRate int
	Channels   int
	Samples    []float64
	Offset     int

	// Result of the most recent Read/Write/Decode/Encode.
	Result Result

	// FS is the filesystem used by Read and Write. Nil means the OS
	// filesystem.
	FS afero.Fs
}

// New returns an empty mono buffer at 48000 Hz.
func New() *Buffer {
	return &Buffer{SampleRate: 48000, Channels: 1, Result: resultOK}
}

// NewBuffer returns an empty buffer with the given rate and channel count.
func NewBuffer(sampleRate, channels int) *Buffer {
	return &Buffer{SampleRate: sampleRate, Channels: channels, Result: resultOK}
}

// NewBufferSamples returns a buffer wrapping samples without copying.
func NewBufferSamples(sampleRate, channels int, samples []float64) *Buffer {
	return &Buffer{SampleRate: sampleRate, Channels: channels, Samples: samples, Result: resultOK}
}

// Open reads the named WAV file into a fresh buffer, warning on stderr when
// the read fails. Callers check the buffer's Result.
func Open(path string) *Buffer {
	b := New()
	b.Result = b.Read(path).Warn()
	return b
}

func (b *Buffer) fs() afero.Fs {
	if b.FS != nil {
		return b.FS
	}
	return afero.NewOsFs()
}

// Length returns the number of frames from Offset to the end.
func (b *Buffer) Length() int {
	return len(b.Samples)/b.Channels - b.Offset
}

// Resize sets the buffer to length frames past Offset, zero-filling any new
// frames. Truncation is permitted.
func (b *Buffer) Resize(length int) {
	n := (b.Offset + length) * b.Channels
	if n <= len(b.Samples) {
		b.Samples = b.Samples[:n]
		return
	}
	for len(b.Samples) < n {
		b.Samples = append(b.Samples, 0)
	}
}

// Channel returns a strided view of channel c, starting at Offset. The view
// aliases the buffer's samples; it stays valid until the buffer is resized.
func (b *Buffer) Channel(c int) ChannelView {
	return ChannelView{
		data:   b.Samples[b.Offset*b.Channels+c:],
		stride: b.Channels,
	}
}

// MakeMono collapses the buffer to a single channel by averaging each frame's
// interleaved values. The frame count is unchanged and the whole sample array
// is collapsed, ignoring Offset. Calling it on a mono buffer is a no-op in
// effect.
func (b *Buffer) MakeMono() {
	mixed := make([]float64, len(b.Samples)/b.Channels)
	for c := 0; c < b.Channels; c++ {
		for i := range mixed {
			mixed[i] += b.Samples[i*b.Channels+c]
		}
	}
	scale := 1 / float64(b.Channels)
	for i := range mixed {
		mixed[i] *= scale
	}
	b.Channels = 1
	b.Samples = mixed
}

// Normalize scales the buffer so its peak magnitude does not exceed absLevel.
// A non-positive absLevel selects DefaultPeakLevel. The peak is measured from
// Offset onward, but when gain is applied every sample is scaled, including
// frames before Offset.
//
// Gain is only applied when the measured peak exceeds absLevel, so the
// signal is never amplified. reduceOnly seeds the running peak at absLevel
// instead of a near-zero sentinel, making the never-amplify intent explicit.
func (b *Buffer) Normalize(reduceOnly bool, absLevel float64) {
	if absLevel <= 0 {
		absLevel = DefaultPeakLevel
	}
	peak := peakSeed
	if reduceOnly {
		peak = absLevel
	}
	for _, s := range b.Samples[b.Offset*b.Channels:] {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak > absLevel {
		gain := absLevel / peak
		for i := range b.Samples {
			b.Samples[i] *= gain
		}
	}
}

// ChannelView is a strided window into one channel of a Buffer. Element i
// maps to the owning buffer's Samples[(Offset+i)*Channels+c]. Mutations are
// visible through the buffer and vice versa.
type ChannelView struct {
	data   []float64
	stride int
}

// Len returns the number of addressable frames in the view.
func (v ChannelView) Len() int {
	if len(v.data) == 0 {
		return 0
	}
	return (len(v.data)-1)/v.stride + 1
}

// At returns the sample at frame i.
func (v ChannelView) At(i int) float64 {
	return v.data[i*v.stride]
}

// Set stores value at frame i.
func (v ChannelView) Set(i int, value float64) {
	v.data[i*v.stride] = value
}
