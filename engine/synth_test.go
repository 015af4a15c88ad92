package engine_test

import (
	"math"
	"testing"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/engine"
)

const sampleRate = 44100

func peak(buf toneboard.AudioBuffer) float32 {
	var p float32
	for _, s := range buf {
		for _, v := range s {
			if a := float32(math.Abs(float64(v))); a > p {
				p = a
			}
		}
	}
	return p
}

func newSynth(t *testing.T) *engine.Synth {
	t.Helper()
	s, err := engine.New(toneboard.DefaultSettings(), sampleRate)
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	return s
}

func TestSilentWithoutNotes(t *testing.T) {
	s := newSynth(t)
	if p := peak(toneboard.Fill(s, 1024)); p != 0 {
		t.Fatalf("synth should be silent before any note, got peak %v", p)
	}
}

func TestTriggerAttackRelease(t *testing.T) {
	for _, typ := range []string{"sine", "square", "triangle", "sawtooth", "amsine", "fmsquare", "fattriangle", "amsawtooth"} {
		t.Run(typ, func(t *testing.T) {
			s := newSynth(t)
			if err := s.SetOscillatorType(typ); err != nil {
				t.Fatalf("SetOscillatorType(%q) failed: %v", typ, err)
			}
			if err := s.TriggerAttackRelease("A4", "16n"); err != nil {
				t.Fatalf("TriggerAttackRelease failed: %v", err)
			}
			// 16n at 120 BPM is 0.125 s
			held := toneboard.Fill(s, sampleRate/8)
			if p := peak(held); p == 0 {
				t.Fatalf("expected sound while the note is held")
			}
			// release of the default envelope is 1.2 s
			toneboard.Fill(s, sampleRate*13/10)
			if s.Active() {
				t.Fatalf("synth should be idle after the release")
			}
			if p := peak(toneboard.Fill(s, 1024)); p != 0 {
				t.Fatalf("expected silence after the release, got peak %v", p)
			}
		})
	}
}

func TestReleaseHappensOnTime(t *testing.T) {
	settings := toneboard.DefaultSettings()
	settings.Envelope = toneboard.EnvelopeConfig{Attack: 0, Decay: 0, Sustain: 1, Release: 0}
	s, err := engine.New(settings, sampleRate)
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	if err := s.SetOscillatorType("square"); err != nil {
		t.Fatalf("SetOscillatorType failed: %v", err)
	}
	if err := s.TriggerAttackRelease("A4", "0.01"); err != nil {
		t.Fatalf("TriggerAttackRelease failed: %v", err)
	}
	frames := sampleRate / 100
	buf := toneboard.Fill(s, frames+100)
	if peak(buf[:frames]) == 0 {
		t.Fatalf("expected sound before the release")
	}
	if p := peak(buf[frames+1:]); p != 0 {
		t.Fatalf("expected silence after the release frame, got %v", p)
	}
}

func TestSetEnvelope(t *testing.T) {
	s := newSynth(t)
	if err := s.SetEnvelope(toneboard.Attack, 0.5); err != nil {
		t.Fatalf("SetEnvelope failed: %v", err)
	}
	expected := toneboard.DefaultSettings()
	expected.Envelope.Attack = 0.5
	if got := s.Settings(); got != expected {
		t.Fatalf("got settings %+v, expected %+v", got, expected)
	}
}

func TestSetEnvelopeRejects(t *testing.T) {
	tests := []struct {
		field toneboard.EnvelopeField
		value float64
	}{
		{toneboard.Sustain, 1.1},
		{toneboard.Sustain, -0.1},
		{toneboard.Attack, -1},
		{toneboard.Release, math.Inf(1)},
		{toneboard.Decay, math.NaN()},
	}
	for _, tt := range tests {
		s := newSynth(t)
		if err := s.SetEnvelope(tt.field, tt.value); err == nil {
			t.Errorf("SetEnvelope(%v, %v) should have failed", tt.field, tt.value)
		}
		if got := s.Settings(); got != toneboard.DefaultSettings() {
			t.Errorf("rejected SetEnvelope(%v, %v) changed the settings to %+v", tt.field, tt.value, got)
		}
	}
}

func TestSetOscillatorType(t *testing.T) {
	s := newSynth(t)
	if err := s.SetOscillatorType("fmsquare"); err != nil {
		t.Fatalf("SetOscillatorType failed: %v", err)
	}
	expected := toneboard.OscillatorConfig{Family: toneboard.FM, Shape: toneboard.Square}
	if got := s.Settings().Oscillator; got != expected {
		t.Fatalf("got oscillator %+v, expected %+v", got, expected)
	}
	for _, id := range []string{"", "defaultsine", "noise", "am", "fatfmsine"} {
		if err := s.SetOscillatorType(id); err == nil {
			t.Errorf("SetOscillatorType(%q) should have failed", id)
		}
	}
	if got := s.Settings().Oscillator; got != expected {
		t.Fatalf("rejected types changed the oscillator to %+v", got)
	}
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	settings := toneboard.DefaultSettings()
	settings.Envelope.Sustain = 2
	if _, err := engine.New(settings, sampleRate); err == nil {
		t.Fatalf("engine.New should reject sustain > 1")
	}
	if _, err := engine.New(toneboard.DefaultSettings(), 0); err == nil {
		t.Fatalf("engine.New should reject a zero sample rate")
	}
}

func TestTriggerRejectsBadInput(t *testing.T) {
	s := newSynth(t)
	if err := s.TriggerAttackRelease("X4", "16n"); err == nil {
		t.Errorf("expected an error for an invalid note")
	}
	if err := s.TriggerAttackRelease("C4", "16x"); err == nil {
		t.Errorf("expected an error for an invalid duration")
	}
	if err := s.TriggerAttackRelease("C4", "1e300"); err == nil {
		t.Errorf("expected an error for a duration that does not fit in frames")
	}
	if s.Active() {
		t.Errorf("rejected triggers should not start a note")
	}
}

func TestLongNoteReleases(t *testing.T) {
	s, err := engine.New(toneboard.DefaultSettings(), 1000)
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	if err := s.TriggerAttackRelease("C4", "2"); err != nil {
		t.Fatalf("TriggerAttackRelease failed: %v", err)
	}
	toneboard.Fill(s, 1000)
	if !s.Active() {
		t.Fatalf("the note should still be held after 1 s")
	}
	toneboard.Fill(s, 10000)
	if s.Active() {
		t.Fatalf("the note should have been released and faded out")
	}
}

func TestSequence(t *testing.T) {
	s := newSynth(t)
	buffer, err := s.Sequence([]string{"C4", "E4", "G4"}, "16n", "8n")
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	step := sampleRate / 4 // an eighth note at 120 BPM
	if len(buffer) < 3*step {
		t.Fatalf("expected at least %d frames, got %d", 3*step, len(buffer))
	}
	for i := 0; i < 3; i++ {
		if p := peak(buffer[i*step : i*step+step/2]); p == 0 {
			t.Errorf("note %d should be audible", i)
		}
	}
	if s.Active() {
		t.Error("the synth should be silent after the sequence")
	}
	if _, err := s.Sequence([]string{"H4"}, "16n", "8n"); err == nil {
		t.Error("an invalid note should fail the sequence")
	}
	if _, err := s.Sequence([]string{"C4"}, "16n", "forever"); err == nil {
		t.Error("an invalid step should fail the sequence")
	}
}
