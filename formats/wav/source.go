// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dspkit/wavetool/audio"
)

// bufferSource streams a Buffer's frames from Offset onward.
type bufferSource struct {
	b   *Buffer
	pos int // index into b.Samples
}

// NewSource returns a Source view over b, starting at the buffer's Offset.
// The view reads the buffer live; mutating the buffer mid-stream is not
// supported.
func NewSource(b *Buffer) audio.Source {
	return &bufferSource{b: b, pos: b.Offset * b.Channels}
}

func (s *bufferSource) SampleRate() int { return s.b.SampleRate }
func (s *bufferSource) Channels() int   { return s.b.Channels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	remaining := len(s.b.Samples) - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	n := min(len(dst), remaining)
	for i := 0; i < n; i++ {
		dst[i] = float32(s.b.Samples[s.pos+i])
	}
	s.pos += n
	return n, nil
}

// Decoder adapts the codec to the audio.Decoder registry interface. The
// chunk scan needs a seeker, so the input is buffered in memory first.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	b := New()
	if res := b.Decode(bytes.NewReader(data)); !res.OK() {
		return nil, res
	}
	return NewSource(b), nil
}

// Collect drains src into a new Buffer, widening samples to float64. The
// source is closed when collection finishes.
func Collect(src audio.Source) (*Buffer, error) {
	b := NewBuffer(src.SampleRate(), src.Channels())
	buf := make([]float32, src.BufSize())
	for {
		n, err := src.ReadSamples(buf)
		for _, s := range buf[:n] {
			b.Samples = append(b.Samples, float64(s))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("%w", err)
		}
	}
	if err := src.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	// Short reads can leave a ragged tail; keep whole frames only.
	for len(b.Samples)%b.Channels != 0 {
		b.Samples = append(b.Samples, 0)
	}
	return b, nil
}
