package engine_test

import (
	"math"
	"testing"

	"github.com/vsariola/toneboard/engine"
)

func TestNoteFrequency(t *testing.T) {
	tests := []struct {
		note string
		freq float64
	}{
		{"A4", 440},
		{"A5", 880},
		{"A3", 220},
		{"C4", 261.6256},
		{"C#4", 277.1826},
		{"Db4", 277.1826},
		{"B4", 493.8833},
		{"C6", 1046.502},
	}
	for _, tt := range tests {
		got, err := engine.NoteFrequency(tt.note)
		if err != nil {
			t.Fatalf("NoteFrequency(%q) failed: %v", tt.note, err)
		}
		if math.Abs(got-tt.freq) > 1e-3 {
			t.Errorf("NoteFrequency(%q) = %v, expected %v", tt.note, got, tt.freq)
		}
	}
}

func TestNoteFrequencyRejects(t *testing.T) {
	for _, note := range []string{"", "H4", "E#4", "B#4", "Cb4", "C", "C#", "Cx"} {
		if _, err := engine.NoteFrequency(note); err == nil {
			t.Errorf("NoteFrequency(%q) should have failed", note)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token   string
		bpm     float64
		seconds float64
	}{
		{"16n", 120, 0.125},
		{"4n", 120, 0.5},
		{"4n", 60, 1},
		{"8n.", 120, 0.375},
		{"8t", 120, 1.0 / 6},
		{"1m", 120, 2},
		{"2m", 120, 4},
		{"0.3", 120, 0.3},
	}
	for _, tt := range tests {
		got, err := engine.ParseDuration(tt.token, tt.bpm)
		if err != nil {
			t.Fatalf("ParseDuration(%q) failed: %v", tt.token, err)
		}
		if math.Abs(got-tt.seconds) > 1e-9 {
			t.Errorf("ParseDuration(%q, %v) = %v, expected %v", tt.token, tt.bpm, got, tt.seconds)
		}
	}
}

func TestParseDurationRejects(t *testing.T) {
	for _, token := range []string{"", "n", "0n", "-4n", "abc", "1.5.", ".", "-1"} {
		if _, err := engine.ParseDuration(token, 120); err == nil {
			t.Errorf("ParseDuration(%q) should have failed", token)
		}
	}
	if _, err := engine.ParseDuration("4n", 0); err == nil {
		t.Errorf("ParseDuration with zero tempo should have failed")
	}
	for _, token := range []string{"1e300", "+Inf", "3601", "100000m"} {
		if _, err := engine.ParseDuration(token, 120); err == nil {
			t.Errorf("ParseDuration(%q) should have failed", token)
		}
	}
	if _, err := engine.ParseDuration("4n", 1e-300); err == nil {
		t.Errorf("ParseDuration with a vanishing tempo should have failed")
	}
	if got, err := engine.ParseDuration("3600", 120); err != nil || got != engine.MaxDuration {
		t.Errorf("ParseDuration(\"3600\") = %v, %v", got, err)
	}
}
