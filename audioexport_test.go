package toneboard_test

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/go-audio/wav"

	"github.com/vsariola/toneboard"
)

func TestWavHeader(t *testing.T) {
	buffer := make(toneboard.AudioBuffer, 100)
	for _, pcm16 := range []bool{true, false} {
		wav, err := buffer.Wav(pcm16, 48000)
		if err != nil {
			t.Fatalf("Wav failed: %v", err)
		}
		if !bytes.HasPrefix(wav, []byte("RIFF")) || !bytes.Equal(wav[8:12], []byte("WAVE")) {
			t.Fatalf("missing RIFF/WAVE header")
		}
		if size := binary.LittleEndian.Uint32(wav[4:8]); int(size) != len(wav)-8 {
			t.Errorf("pcm16=%v: chunk size %v, expected %v", pcm16, size, len(wav)-8)
		}
		if rate := binary.LittleEndian.Uint32(wav[24:28]); rate != 48000 {
			t.Errorf("pcm16=%v: sample rate %v, expected 48000", pcm16, rate)
		}
	}
}

func TestRawClampsPCM(t *testing.T) {
	buffer := toneboard.AudioBuffer{{2, -2}, {0.5, 0}}
	raw, err := buffer.Raw(true)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if len(raw) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(raw))
	}
	if v := int16(binary.LittleEndian.Uint16(raw[0:2])); v != 32767 {
		t.Errorf("expected 32767, got %v", v)
	}
	if v := int16(binary.LittleEndian.Uint16(raw[2:4])); v != -32768 {
		t.Errorf("expected -32768, got %v", v)
	}
}

func TestWavDecodes(t *testing.T) {
	buffer := toneboard.AudioBuffer{{0.5, -0.5}, {1, -1}, {0, 0}}
	b, err := buffer.Wav(true, 44100)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	d := wav.NewDecoder(bytes.NewReader(b))
	if !d.IsValidFile() {
		t.Fatal("the decoder did not accept the file")
	}
	pcm, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer failed: %v", err)
	}
	if d.SampleRate != 44100 || d.NumChans != 2 || d.BitDepth != 16 {
		t.Fatalf("got rate %v, channels %v, depth %v", d.SampleRate, d.NumChans, d.BitDepth)
	}
	expected := []int{16383, -16383, 32767, -32767, 0, 0}
	if !reflect.DeepEqual(pcm.Data, expected) {
		t.Fatalf("got %v, expected %v", pcm.Data, expected)
	}
}
