package toneboard

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

type (
	// wavFormat is the body of the "fmt " chunk.
	wavFormat struct {
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// Wav converts the buffer into a stereo WAV file. With pcm16 the samples are
// written as 16-bit signed integers, otherwise as 32-bit floats.
func (buffer AudioBuffer) Wav(pcm16 bool, sampleRate int) ([]byte, error) {
	data, err := buffer.Raw(pcm16)
	if err != nil {
		return nil, fmt.Errorf("Wav failed: %v", err)
	}
	format := wavFormat{AudioFormat: wavFormatFloat, NumChannels: 2, SampleRate: uint32(sampleRate), BitsPerSample: 32}
	if pcm16 {
		format.AudioFormat, format.BitsPerSample = wavFormatPCM, 16
	}
	format.BlockAlign = format.NumChannels * format.BitsPerSample / 8
	format.ByteRate = format.SampleRate * uint32(format.BlockAlign)

	var chunks bytes.Buffer
	if pcm16 {
		writeChunk(&chunks, "fmt ", format)
	} else {
		// non-PCM formats need the extension size and a fact chunk
		writeChunk(&chunks, "fmt ", struct {
			Format        wavFormat
			ExtensionSize uint16
		}{format, 0})
		writeChunk(&chunks, "fact", uint32(len(buffer)))
	}
	writeChunk(&chunks, "data", data)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(4+chunks.Len()))
	buf.WriteString("WAVE")
	chunks.WriteTo(&buf)
	return buf.Bytes(), nil
}

// Raw converts the buffer into interleaved stereo samples with no header.
func (buffer AudioBuffer) Raw(pcm16 bool) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if pcm16 {
		samples := make([][2]int16, len(buffer))
		for i, v := range buffer {
			samples[i] = [2]int16{toInt16(v[0]), toInt16(v[1])}
		}
		err = binary.Write(&buf, binary.LittleEndian, samples)
	} else {
		err = binary.Write(&buf, binary.LittleEndian, buffer)
	}
	if err != nil {
		return nil, fmt.Errorf("Raw failed: could not binary write data to binary buffer: %v", err)
	}
	return buf.Bytes(), nil
}

func writeChunk(buf *bytes.Buffer, id string, data any) {
	var body bytes.Buffer
	if b, ok := data.([]byte); ok {
		body.Write(b)
	} else {
		binary.Write(&body, binary.LittleEndian, data)
	}
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(body.Len()))
	body.WriteTo(buf)
}

func toInt16(v float32) int16 {
	return int16(clamp(int(v*math.MaxInt16), math.MinInt16, math.MaxInt16))
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
