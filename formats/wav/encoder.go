// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"
	"math"
)

// Frames are encoded in chunks of this many samples to bound the scratch
// buffer for large payloads.
const encodeChunk = 8192

// Write validates the buffer, creates the named file, and serialises the
// frames from Offset onward under the chosen sample format. Validation runs
// before the file is touched, so an invalid buffer produces no file bytes.
func (b *Buffer) Write(path string, format SampleFormat) Result {
	if res := b.validate(format); !res.OK() {
		b.Result = res
		return b.Result
	}
	file, err := b.fs().Create(path)
	if err != nil {
		b.Result = ioError("failed to open file: " + path)
		return b.Result
	}
	defer file.Close()
	return b.Encode(file, format)
}

// Encode serialises the buffer as a complete RIFF/WAVE stream: the 44-byte
// header followed by the frames from Offset onward. The outcome is stored on
// the buffer and returned.
func (b *Buffer) Encode(w io.Writer, format SampleFormat) Result {
	b.Result = b.encode(w, format)
	return b.Result
}

func (b *Buffer) validate(format SampleFormat) Result {
	if b.Channels < 1 || b.Channels > 0xFFFF {
		return weirdConfig("invalid channel count")
	}
	if b.SampleRate < 1 || int64(b.SampleRate) > 0xFFFFFFFF {
		return weirdConfig("invalid sample rate")
	}
	if format.BytesPerSample() == 0 {
		return formatError("invalid sample format")
	}
	return resultOK
}

func (b *Buffer) encode(w io.Writer, format SampleFormat) Result {
	if res := b.validate(format); !res.OK() {
		return res
	}

	bps := format.BytesPerSample()
	payload := b.Samples[b.Offset*b.Channels:]
	dataLength := uint32(len(payload) * bps)

	var header [44]byte
	copy(header[0:4], tagRIFF)
	binary.LittleEndian.PutUint32(header[4:8], 36+dataLength)
	copy(header[8:12], tagWAVE)
	copy(header[12:16], tagFmt)
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], format.code())
	binary.LittleEndian.PutUint16(header[22:24], uint16(b.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(b.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(b.SampleRate)*uint32(b.Channels)*uint32(bps))
	binary.LittleEndian.PutUint16(header[32:34], uint16(b.Channels*bps))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bps*8))
	copy(header[36:40], tagData)
	binary.LittleEndian.PutUint32(header[40:44], dataLength)

	if _, err := w.Write(header[:]); err != nil {
		return ioError("write failed: " + err.Error())
	}

	buf := make([]byte, min(len(payload), encodeChunk)*bps)
	for start := 0; start < len(payload); start += encodeChunk {
		chunk := payload[start:min(start+encodeChunk, len(payload))]
		out := buf[:len(chunk)*bps]
		switch format {
		case FormatPCM16:
			for i, s := range chunk {
				binary.LittleEndian.PutUint16(out[i*2:], encodePCM16(s))
			}
		case FormatPCM24:
			for i, s := range chunk {
				v := encodePCM24(s)
				out[i*3] = byte(v)
				out[i*3+1] = byte(v >> 8)
				out[i*3+2] = byte(v >> 16)
			}
		case FormatFloat32:
			for i, s := range chunk {
				binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(float32(s)))
			}
		}
		if _, err := w.Write(out); err != nil {
			return ioError("write failed: " + err.Error())
		}
	}
	return resultOK
}

// encodePCM16 scales s to the 16-bit range with a saturating clamp: values
// outside [-1, +1) pin to the representable extremes, never wrap.
func encodePCM16(s float64) uint16 {
	v := s * (1 << 15)
	if v > (1<<15)-1 {
		v = (1 << 15) - 1
	}
	if v <= -(1 << 15) {
		v = -(1 << 15)
	}
	if v < 0 {
		v += 1 << 16
	}
	return uint16(int32(v))
}

// encodePCM24 is the 24-bit counterpart, clamping inclusively at both
// extremes like the 16-bit path.
func encodePCM24(s float64) uint32 {
	v := s * (1 << 23)
	if v > (1<<23)-1 {
		v = (1 << 23) - 1
	}
	if v <= -(1 << 23) {
		v = -(1 << 23)
	}
	if v < 0 {
		v += 1 << 24
	}
	return uint32(int64(v))
}
