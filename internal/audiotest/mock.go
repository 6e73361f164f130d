// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests. MockSource
// satisfies audio.Source without importing it, so any package in the module
// can use it.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function. The final read
// returns its sample count together with io.EOF, matching how file-backed
// decoders behave.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate in total
	pos        int // frames generated so far
	gen        func(frame, channel int) float32
}

// NewMockSource returns a source of the given number of frames whose values
// come from gen, called with the frame index and channel.
func NewMockSource(sampleRate, channels, frames int, gen func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		gen:        gen,
	}
}

// NewSilentSource returns an all-zero source.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource returns a sine wave at the given frequency, identical on
// every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	step := 2 * math.Pi * frequency / float64(sampleRate)
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(step * float64(frame)))
	})
}

// NewConstantSource returns a source that repeats value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.pos = 0
}

// ReadSamples writes whole frames only; a dst shorter than one frame writes
// nothing.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := len(dst) / m.channels
	if remaining := m.frames - m.pos; n > remaining {
		n = remaining
	}

	for f := 0; f < n; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.gen(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
