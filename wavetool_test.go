// SPDX-License-Identifier: EPL-2.0

package wavetool_test

import (
	"bytes"
	"math"
	"slices"
	"testing"

	"github.com/spf13/afero"

	"github.com/dspkit/wavetool"
	"github.com/dspkit/wavetool/formats/wav"
	"github.com/dspkit/wavetool/internal/audiotest"
)

func writeTestWav(t *testing.T, fsys afero.Fs, path string, b *wav.Buffer) {
	t.Helper()
	var out bytes.Buffer
	if res := b.Encode(&out, wav.FormatFloat32); !res.OK() {
		t.Fatalf("Encode: %v", res)
	}
	if err := afero.WriteFile(fsys, path, out.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDefaultRegistryKnowsAllFormats(t *testing.T) {
	t.Parallel()

	formats := wavetool.DefaultRegistry().Formats()
	for _, want := range []string{"wav", "mp3", "ogg", "oga", "aiff", "aif"} {
		if !slices.Contains(formats, want) {
			t.Errorf("registry is missing %q (has %v)", want, formats)
		}
	}
}

func TestOpenFSDecodesWav(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	src := wav.NewBufferSamples(44100, 2, []float64{0.25, -0.25, 0.5, -0.5})
	writeTestWav(t, fsys, "tone.wav", src)

	got, err := wavetool.OpenFS(fsys, "tone.wav")
	if err != nil {
		t.Fatalf("OpenFS: %v", err)
	}
	if got.SampleRate != 44100 || got.Channels != 2 {
		t.Fatalf("got %d Hz %d ch, want 44100 Hz 2 ch", got.SampleRate, got.Channels)
	}
	if len(got.Samples) != len(src.Samples) {
		t.Fatalf("got %d samples, want %d", len(got.Samples), len(src.Samples))
	}
	for i, want := range src.Samples {
		if math.Abs(got.Samples[i]-want) > 1e-7 {
			t.Errorf("Samples[%d] = %v, want %v", i, got.Samples[i], want)
		}
	}
}

func TestOpenFSRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if _, err := wavetool.OpenFS(fsys, "notes.txt"); err == nil {
		t.Fatal("OpenFS(notes.txt) succeeded, want error")
	}
}

func TestOpenFSMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := wavetool.OpenFS(afero.NewMemMapFs(), "absent.wav"); err == nil {
		t.Fatal("OpenFS(absent.wav) succeeded, want error")
	}
}

func TestResampleHalvesRate(t *testing.T) {
	t.Parallel()

	b := wav.NewBuffer(48000, 1)
	b.Samples = make([]float64, 4800)
	for i := range b.Samples {
		b.Samples[i] = 0.5
	}

	out, err := wavetool.Resample(b, 24000)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if out.SampleRate != 24000 {
		t.Errorf("SampleRate = %d, want 24000", out.SampleRate)
	}
	// Roughly half the frames, allowing edge slack from interpolation.
	if out.Length() < 2300 || out.Length() > 2500 {
		t.Errorf("Length() = %d, want about 2400", out.Length())
	}
	for i, s := range out.Samples {
		if math.Abs(s-0.5) > 0.01 {
			t.Fatalf("Samples[%d] = %v, want about 0.5", i, s)
		}
	}
}

func TestResampleSameRateIsNoop(t *testing.T) {
	t.Parallel()

	b := wav.NewBufferSamples(8000, 1, []float64{0.1, 0.2})
	out, err := wavetool.Resample(b, 8000)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if out != b {
		t.Error("same-rate resample did not return the original buffer")
	}
}

func TestResampleToMono16(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 3200, 0.5)
	pcm16, rate, err := wavetool.ResampleToMono16(src, 16000, 256)
	if err != nil {
		t.Fatalf("ResampleToMono16: %v", err)
	}
	if rate != 16000 {
		t.Errorf("rate = %d, want 16000", rate)
	}
	// 3200 stereo samples = 1600 frames in, same rate out.
	if len(pcm16) < 1500 || len(pcm16) > 1700 {
		t.Errorf("len(pcm16) = %d, want about 1600", len(pcm16))
	}
	want := int16(16383) // 0.5 of full scale, truncated
	for i, s := range pcm16 {
		if s < want-400 || s > want+400 {
			t.Fatalf("pcm16[%d] = %d, want about %d", i, s, want)
		}
	}
}

func TestResampleToMono16Clamps(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 800, 1.5)
	pcm16, _, err := wavetool.ResampleToMono16(src, 8000, 128)
	if err != nil {
		t.Fatalf("ResampleToMono16: %v", err)
	}
	// 1.5 clamps to full scale before the int16 conversion.
	for i, s := range pcm16 {
		if s < 32000 {
			t.Fatalf("pcm16[%d] = %d, want full-scale output", i, s)
		}
	}
}
