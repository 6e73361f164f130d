// SPDX-License-Identifier: EPL-2.0

package wavetool

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/dspkit/wavetool/audio"
	"github.com/dspkit/wavetool/formats/aiff"
	"github.com/dspkit/wavetool/formats/mp3"
	"github.com/dspkit/wavetool/formats/vorbis"
	"github.com/dspkit/wavetool/formats/wav"
)

// DefaultRegistry returns a Registry with every built-in decoder registered
// under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}

// Open decodes the audio file at path into a wav.Buffer, choosing the
// decoder by file extension.
func Open(path string) (*wav.Buffer, error) {
	return OpenFS(afero.NewOsFs(), path)
}

// OpenFS is Open against an explicit filesystem. Useful for tests and for
// embedded or in-memory inputs.
func OpenFS(fsys afero.Fs, path string) (*wav.Buffer, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := DefaultRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("no decoder for %q files", ext)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b, err := wav.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b.FS = fsys
	return b, nil
}

// Resample converts b to targetRate with cubic interpolation, returning a
// new buffer. A buffer already at targetRate is returned as-is, not copied.
func Resample(b *wav.Buffer, targetRate int) (*wav.Buffer, error) {
	if b.SampleRate == targetRate {
		return b, nil
	}
	out, err := wav.Collect(audio.NewResampler(wav.NewSource(b), targetRate))
	if err != nil {
		return nil, fmt.Errorf("resample to %d Hz: %w", targetRate, err)
	}
	out.FS = b.FS
	return out, nil
}

// ResampleToMono16 resamples src to targetRate, mixes it down to mono, and
// collects the result as 16-bit PCM samples. bufferSize sets the read chunk
// in samples; 4096 is a sensible default.
//
// This is the convenience path for speech pipelines that want telephone-style
// audio regardless of the input format. The returned rate equals targetRate.
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)
	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			if x > 1 {
				x = 1
			} else if x < -1 {
				x = -1
			}
			pcm16 = append(pcm16, int16(x*32767))
		}
		if err != nil {
			if err == io.EOF {
				return pcm16, targetRate, nil
			}
			return pcm16, targetRate, fmt.Errorf("%w", err)
		}
	}
}
