// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// Chunk tags of the RIFF/WAVE container.
const (
	tagRIFF = "RIFF"
	tagWAVE = "WAVE"
	tagFmt  = "fmt "
	tagData = "data"
)

// Read opens the named file and decodes it into the buffer. The outcome is
// stored on the buffer and returned.
func (b *Buffer) Read(path string) Result {
	file, err := b.fs().Open(path)
	if err != nil {
		b.Result = ioError("failed to open file: " + path)
		return b.Result
	}
	defer file.Close()
	return b.Decode(file)
}

// Decode reads a complete RIFF/WAVE stream from r into the buffer, replacing
// its sample rate, channel count and samples, and resetting Offset to 0. On
// failure the buffer keeps whatever partial state the failure produced;
// callers inspect the returned Result.
//
// A ReadSeeker is required because chunk order is not guaranteed: after the
// fmt chunk is parsed the decoder seeks back to the start of the chunk list,
// so a data chunk that appeared earlier is observed again with the format
// known.
func (b *Buffer) Decode(r io.ReadSeeker) Result {
	b.Result = b.decode(r)
	return b.Result
}

func (b *Buffer) decode(r io.ReadSeeker) Result {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return formatError("input is not a RIFF file")
	}
	if string(hdr[0:4]) != tagRIFF {
		return formatError("input is not a RIFF file")
	}
	// hdr[4:8] is the container length; tolerated but not validated.
	if string(hdr[8:12]) != tagWAVE {
		return formatError("input is not a plain WAVE file")
	}

	// Start of the chunk list; the fmt parse seeks back here.
	blockStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return ioError("seek failed: " + err.Error())
	}

	hasFormat, hasData := false, false
	format := FormatPCM16

	var chunk [8]byte
	for {
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return ioError("read failed: " + err.Error())
		}
		tag := string(chunk[0:4])
		length := binary.LittleEndian.Uint32(chunk[4:8])

		switch {
		case !hasFormat && tag == tagFmt:
			res, f := b.parseFormat(r)
			if !res.OK() {
				return res
			}
			format = f
			hasFormat = true
			if _, err := r.Seek(blockStart, io.SeekStart); err != nil {
				return ioError("seek failed: " + err.Error())
			}

		case hasFormat && tag == tagData:
			res := b.decodeData(r, format, length)
			if !res.OK() {
				return res
			}
			hasData = true

		default:
			// Unknown chunk, or fmt/data out of order; skip the payload.
			if _, err := r.Seek(int64(length), io.SeekCurrent); err != nil {
				return ioError("seek failed: " + err.Error())
			}
		}
	}

	if !hasFormat {
		return formatError("missing `fmt ` block")
	}
	if !hasData {
		return formatError("missing `data` block")
	}
	return resultOK
}

// parseFormat reads and validates the 16-byte fmt payload, storing the rate
// and channel count on the buffer.
func (b *Buffer) parseFormat(r io.Reader) (Result, SampleFormat) {
	var fields [16]byte
	if _, err := io.ReadFull(r, fields[:]); err != nil {
		return formatError("truncated `fmt ` block"), FormatInvalid
	}
	code := binary.LittleEndian.Uint16(fields[0:2])
	channels := binary.LittleEndian.Uint16(fields[2:4])
	sampleRate := binary.LittleEndian.Uint32(fields[4:8])
	bytesPerSecond := binary.LittleEndian.Uint32(fields[8:12])
	bytesPerFrame := binary.LittleEndian.Uint16(fields[12:14])
	bits := binary.LittleEndian.Uint16(fields[14:16])

	if channels < 1 {
		return formatError("cannot have zero channels"), FormatInvalid
	}
	if sampleRate < 1 {
		return formatError("cannot have zero sampleRate"), FormatInvalid
	}
	format := resolveFormat(code, bits)
	if format == FormatInvalid {
		reason := "unsupported format:bits: " + strconv.Itoa(int(code)) + ":" + strconv.Itoa(int(bits))
		return unsupported(reason), FormatInvalid
	}
	// Plain WAVE, so the derived sizes must agree.
	if uint32(bits)*uint32(channels) != uint32(bytesPerFrame)*8 {
		return formatError("format sizes don't add up"), FormatInvalid
	}
	if bytesPerSecond != sampleRate*uint32(bytesPerFrame) {
		return formatError("format sizes don't add up"), FormatInvalid
	}

	b.Channels = int(channels)
	b.SampleRate = int(sampleRate)
	return resultOK, format
}

// decodeData reads up to length payload bytes and replaces the buffer's
// samples. A payload that ends mid-sample stops at the last complete sample;
// the result is zero-padded to a whole number of frames.
func (b *Buffer) decodeData(r io.Reader, format SampleFormat, length uint32) Result {
	payload := make([]byte, length)
	n, err := io.ReadFull(r, payload)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return ioError("read failed: " + err.Error())
	}
	payload = payload[:n]

	bps := format.BytesPerSample()
	count := len(payload) / bps
	samples := make([]float64, 0, count)
	switch format {
	case FormatPCM16:
		for i := 0; i < count; i++ {
			v := binary.LittleEndian.Uint16(payload[i*2:])
			f := float64(v)
			if v >= 1<<15 {
				f -= 1 << 16
			}
			samples = append(samples, f/(1<<15))
		}
	case FormatPCM24:
		for i := 0; i < count; i++ {
			p := payload[i*3:]
			v := uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
			f := float64(v)
			if v >= 1<<23 {
				f -= 1 << 24
			}
			samples = append(samples, f/(1<<23))
		}
	case FormatFloat32:
		for i := 0; i < count; i++ {
			bits := binary.LittleEndian.Uint32(payload[i*4:])
			samples = append(samples, float64(math.Float32frombits(bits)))
		}
	}

	for len(samples)%b.Channels != 0 {
		samples = append(samples, 0)
	}
	b.Samples = samples
	b.Offset = 0
	return resultOK
}
