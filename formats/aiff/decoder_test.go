// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiffReader simulates aiff.Decoder.
type fakeAiffReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
}

func (m *fakeAiffReader) Format() *goaudio.Format { return m.format }

func (m *fakeAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, nil
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file at all")))
	if err != ErrNotAiffFile {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestSource_Normalises16Bit(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &fakeAiffReader{format: &goaudio.Format{NumChannels: 1, SampleRate: 44100}, samples: []int{0, 16384, -32768}},
		format:   &goaudio.Format{NumChannels: 1, SampleRate: 44100},
		bitDepth: 16,
	}

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadSamples() n = %d, want 3", n)
	}

	want := []float32{0, 0.5, -1}
	for i, w := range want {
		if math.Abs(float64(dst[i]-w)) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_Normalises24Bit(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &fakeAiffReader{format: &goaudio.Format{NumChannels: 1, SampleRate: 48000}, samples: []int{4194304}},
		format:   &goaudio.Format{NumChannels: 1, SampleRate: 48000},
		bitDepth: 24,
	}

	dst := make([]float32, 4)
	n, _ := src.ReadSamples(dst)
	if n != 1 {
		t.Fatalf("ReadSamples() n = %d, want 1", n)
	}
	if math.Abs(float64(dst[0]-0.5)) > 1e-6 {
		t.Errorf("dst[0] = %v, want 0.5", dst[0])
	}
}

func TestSource_EOFWhenDrained(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &fakeAiffReader{format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}, samples: []int{1}},
		format:   &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		bitDepth: 16,
	}

	dst := make([]float32, 4)
	if n, err := src.ReadSamples(dst); n != 1 || err != io.EOF {
		t.Fatalf("first ReadSamples() = (%d, %v), want (1, EOF)", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}
