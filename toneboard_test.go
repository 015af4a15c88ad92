package toneboard_test

import (
	"errors"
	"testing"

	"github.com/vsariola/toneboard"
)

func TestOscillatorType(t *testing.T) {
	tests := []struct {
		family toneboard.OscillatorFamily
		shape  toneboard.Shape
		id     string
	}{
		{toneboard.NoPrefix, toneboard.Sine, "sine"},
		{toneboard.AM, toneboard.Sine, "amsine"},
		{toneboard.FM, toneboard.Square, "fmsquare"},
		{toneboard.Fat, toneboard.Sawtooth, "fatsawtooth"},
		{toneboard.NoPrefix, toneboard.Triangle, "triangle"},
	}
	for _, tt := range tests {
		config := toneboard.OscillatorConfig{Family: tt.family, Shape: tt.shape}
		if id := config.Type(); id != tt.id {
			t.Errorf("%+v.Type() = %q, expected %q", config, id, tt.id)
		}
		parsed, err := toneboard.ParseOscillatorType(tt.id)
		if err != nil {
			t.Fatalf("ParseOscillatorType(%q) failed: %v", tt.id, err)
		}
		if parsed != config {
			t.Errorf("ParseOscillatorType(%q) = %+v, expected %+v", tt.id, parsed, config)
		}
	}
}

func TestParseFamily(t *testing.T) {
	tests := map[string]toneboard.OscillatorFamily{
		"default": toneboard.NoPrefix,
		"":        toneboard.NoPrefix,
		"am":      toneboard.AM,
		"fm":      toneboard.FM,
		"fat":     toneboard.Fat,
	}
	for s, expected := range tests {
		f, err := toneboard.ParseFamily(s)
		if err != nil {
			t.Fatalf("ParseFamily(%q) failed: %v", s, err)
		}
		if f != expected {
			t.Errorf("ParseFamily(%q) = %v, expected %v", s, f, expected)
		}
	}
	if _, err := toneboard.ParseFamily("pm"); !errors.Is(err, toneboard.ErrUnknownFamily) {
		t.Errorf("expected ErrUnknownFamily, got %v", err)
	}
	if p := toneboard.NoPrefix.Prefix(); p != "" {
		t.Errorf("NoPrefix should have an empty prefix, got %q", p)
	}
	if s := toneboard.NoPrefix.String(); s != "default" {
		t.Errorf("NoPrefix should be shown as default, got %q", s)
	}
}

func TestKeyID(t *testing.T) {
	tests := []struct {
		key toneboard.Key
		id  string
	}{
		{toneboard.Key{Note: toneboard.C, Octave: 4}, "C4"},
		{toneboard.Key{Note: toneboard.A, Sharp: true, Octave: 5}, "A#5"},
		{toneboard.Key{Note: toneboard.F, Sharp: true, Octave: 10}, "F#10"},
	}
	for _, tt := range tests {
		if id := tt.key.ID(); id != tt.id {
			t.Errorf("%+v.ID() = %q, expected %q", tt.key, id, tt.id)
		}
	}
	k, err := toneboard.ParseKey("Bb3")
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}
	if k.ID() != "A#3" {
		t.Errorf("Bb3 should normalize to A#3, got %v", k.ID())
	}
}

func TestEnvelopeGetSet(t *testing.T) {
	e := toneboard.DefaultSettings().Envelope
	for i, f := range toneboard.EnvelopeFields {
		if err := e.Set(f, float64(i+1)); err != nil {
			t.Fatalf("Set(%v) failed: %v", f, err)
		}
	}
	expected := toneboard.EnvelopeConfig{Attack: 1, Decay: 2, Sustain: 3, Release: 4}
	if e != expected {
		t.Fatalf("got %+v, expected %+v", e, expected)
	}
	if e.Get(toneboard.Sustain) != 3 {
		t.Fatalf("Get(sustain) = %v", e.Get(toneboard.Sustain))
	}
	if err := e.Set(toneboard.EnvelopeField(7), 1); !errors.Is(err, toneboard.ErrUnknownEnvelopeField) {
		t.Fatalf("expected ErrUnknownEnvelopeField, got %v", err)
	}
}

func TestParseEnvelopeValue(t *testing.T) {
	for _, s := range []string{"0.1", " 0.5", "12"} {
		if _, err := toneboard.ParseEnvelopeValue(s); err != nil {
			t.Errorf("ParseEnvelopeValue(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"", "0", "0.05", "-1", "NaN", "Inf", "slow"} {
		if _, err := toneboard.ParseEnvelopeValue(s); !errors.Is(err, toneboard.ErrInvalidEnvelopeValue) {
			t.Errorf("ParseEnvelopeValue(%q) should fail with ErrInvalidEnvelopeValue, got %v", s, err)
		}
	}
}
