// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// IntBuffer converts the frames from Offset onward into a go-audio IntBuffer
// at the given bit depth (16 or 24), using the same saturating clamp as the
// encoder. It bridges the codec to the wider go-audio ecosystem.
func (b *Buffer) IntBuffer(bitDepth int) (*goaudio.IntBuffer, error) {
	payload := b.Samples[b.Offset*b.Channels:]
	out := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: b.Channels, SampleRate: b.SampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(payload)),
	}
	switch bitDepth {
	case 16:
		for i, s := range payload {
			v := encodePCM16(s)
			out.Data[i] = int(int16(v))
		}
	case 24:
		for i, s := range payload {
			v := encodePCM24(s)
			if v >= 1<<23 {
				out.Data[i] = int(v) - 1<<24
			} else {
				out.Data[i] = int(v)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
	return out, nil
}

// FromIntBuffer builds a Buffer from a go-audio IntBuffer, normalising the
// integer samples into [-1, 1] by the buffer's source bit depth.
func FromIntBuffer(src *goaudio.IntBuffer) (*Buffer, error) {
	if src == nil || src.Format == nil {
		return nil, fmt.Errorf("nil buffer or format")
	}
	var scale float64
	switch src.SourceBitDepth {
	case 8:
		scale = 1 << 7
	case 0, 16:
		scale = 1 << 15
	case 24:
		scale = 1 << 23
	case 32:
		scale = 1 << 31
	default:
		return nil, fmt.Errorf("unsupported bit depth %d", src.SourceBitDepth)
	}
	b := NewBuffer(src.Format.SampleRate, src.Format.NumChannels)
	b.Samples = make([]float64, len(src.Data))
	for i, v := range src.Data {
		b.Samples[i] = float64(v) / scale
	}
	for len(b.Samples)%b.Channels != 0 {
		b.Samples = append(b.Samples, 0)
	}
	return b, nil
}

// Float32Buffer converts the frames from Offset onward into a go-audio
// Float32Buffer without rescaling.
func (b *Buffer) Float32Buffer() *goaudio.Float32Buffer {
	payload := b.Samples[b.Offset*b.Channels:]
	out := &goaudio.Float32Buffer{
		Format: &goaudio.Format{NumChannels: b.Channels, SampleRate: b.SampleRate},
		Data:   make([]float32, len(payload)),
	}
	for i, s := range payload {
		out.Data[i] = float32(s)
	}
	return out
}
