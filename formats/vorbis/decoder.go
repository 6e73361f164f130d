// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/dspkit/wavetool/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs; an interface
// so tests can substitute a fake.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source adapts oggvorbis's float32 stream to audio.Source. oggvorbis
// already produces interleaved float32 in [-1, 1], so no conversion is
// needed, only the frame/sample count mismatch is bridged.
type source struct {
	dec      oggReader
	frameBuf []float32
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) BufSize() int    { return cap(s.frameBuf) }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	channels := s.dec.Channels()
	want := len(dst) / channels * channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}

	// oggvorbis counts in values but only returns whole frames.
	n, err := s.dec.Read(s.frameBuf[:want])
	if n == 0 {
		return 0, err
	}
	copy(dst, s.frameBuf[:n])
	return n, err
}

// Decoder implements audio.Decoder for Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &source{
		dec:      dec,
		frameBuf: make([]float32, 4096),
	}, nil
}
