// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler streams from src at a new sample rate using Catmull-Rom cubic
// interpolation over a four-frame window. The channel count is preserved.
// A one-pole low-pass filter is applied when downsampling to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2; interpolation runs
	// between window[1] and window[2].
	window [4][]float32
	have   [4]bool
	primed bool
	pos    float64
	eof    bool

	frameBuf []float32

	filter      bool
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       float64(src.SampleRate()) / float64(dstRate),
		channels:    channels,
		frameBuf:    make([]float32, channels),
		filterState: make([]float32, channels),
	}
	r.filter = r.ratio > 1.0
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// cubic evaluates the Catmull-Rom spline at fractional position x between y1
// and y2.
func cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	return ((a0*x+a1)*x+a2)*x + y1
}

// lowpass runs the one-pole filter over one frame in place:
// y[n] = 0.5*x[n] + 0.5*y[n-1].
func (r *Resampler) lowpass(frame []float32) {
	for c := 0; c < r.channels; c++ {
		frame[c] = 0.5*frame[c] + 0.5*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

// prime fills the initial window, duplicating the last available frame when
// the stream is shorter than four frames. Returns io.EOF for an empty source.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.frameBuf)
		if n > 0 {
			copy(r.window[i], r.frameBuf[:n])
			r.have[i] = true
			if i == 0 && r.filter {
				// Seed the filter to avoid a warm-up transient.
				copy(r.filterState, r.frameBuf[:n])
			} else if r.filter {
				r.lowpass(r.window[i])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 && n == 0 {
				return io.EOF
			}
			for j := i + 1; j < 4; j++ {
				copy(r.window[j], r.window[i])
				r.have[j] = true
			}
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	r.primed = true
	return nil
}

// advance shifts the window one frame forward, pulling the next source frame
// into window[3]. Returns io.EOF once the source is drained and no frame was
// fetched.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(r.window[3], r.frameBuf[:n])
		r.have[3] = true
		if r.filter {
			r.lowpass(r.window[3])
		}
	} else {
		r.have[3] = false
	}
	if err == io.EOF {
		r.eof = true
		if !r.have[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples produces interleaved frames at the target rate. dst length must
// be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels
	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y0, y3 := r.window[1][c], r.window[2][c]
			if r.have[0] {
				y0 = r.window[0][c]
			}
			if r.have[3] {
				y3 = r.window[3][c]
			}
			dst[written*r.channels+c] = cubic(y0, r.window[1][c], r.window[2][c], y3, alpha)
		}
		written++
		r.pos += r.ratio
	}
	return written * r.channels, nil
}
