// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestIntBuffer_16Bit(t *testing.T) {
	t.Parallel()

	b := NewBufferSamples(44100, 2, []float64{0, 0.5, -0.5, 1.5})
	got, err := b.IntBuffer(16)
	if err != nil {
		t.Fatalf("IntBuffer() error = %v", err)
	}

	if got.Format.SampleRate != 44100 || got.Format.NumChannels != 2 {
		t.Errorf("format = %+v, want 44100 Hz, 2 ch", got.Format)
	}
	if got.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", got.SourceBitDepth)
	}
	want := []int{0, 16384, -16384, 32767}
	for i, w := range want {
		if got.Data[i] != w {
			t.Errorf("Data[%d] = %d, want %d", i, got.Data[i], w)
		}
	}
}

func TestIntBuffer_24BitSaturates(t *testing.T) {
	t.Parallel()

	b := NewBufferSamples(48000, 1, []float64{-1.5, 0.5})
	got, err := b.IntBuffer(24)
	if err != nil {
		t.Fatalf("IntBuffer() error = %v", err)
	}
	want := []int{-8388608, 4194304}
	for i, w := range want {
		if got.Data[i] != w {
			t.Errorf("Data[%d] = %d, want %d", i, got.Data[i], w)
		}
	}
}

func TestIntBuffer_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	b := NewBufferSamples(48000, 1, []float64{0})
	if _, err := b.IntBuffer(12); err == nil {
		t.Error("IntBuffer(12) error = nil, want error")
	}
}

func TestFromIntBuffer(t *testing.T) {
	t.Parallel()

	src := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: 16,
		Data:           []int{0, 16384, -32768},
	}
	b, err := FromIntBuffer(src)
	if err != nil {
		t.Fatalf("FromIntBuffer() error = %v", err)
	}
	if b.SampleRate != 8000 || b.Channels != 1 {
		t.Errorf("buffer = %d Hz, %d ch, want 8000 Hz, 1 ch", b.SampleRate, b.Channels)
	}
	want := []float64{0, 0.5, -1}
	for i, w := range want {
		if b.Samples[i] != w {
			t.Errorf("Samples[%d] = %v, want %v", i, b.Samples[i], w)
		}
	}
}

func TestFromIntBuffer_Nil(t *testing.T) {
	t.Parallel()

	if _, err := FromIntBuffer(nil); err == nil {
		t.Error("FromIntBuffer(nil) error = nil, want error")
	}
}

func TestFloat32Buffer_NoRescale(t *testing.T) {
	t.Parallel()

	b := NewBufferSamples(96000, 1, []float64{0.25, -0.75})
	b.Offset = 1
	got := b.Float32Buffer()

	if len(got.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1 (offset honoured)", len(got.Data))
	}
	if got.Data[0] != -0.75 {
		t.Errorf("Data[0] = %v, want -0.75", got.Data[0])
	}
}
