package toneboard_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vsariola/toneboard"
)

func TestReadSettings(t *testing.T) {
	doc := `
oscillator:
  family: fm
  shape: square
envelope:
  attack: 0.2
  release: 2
`
	s, err := toneboard.ReadSettings(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	expected := toneboard.DefaultSettings()
	expected.Oscillator = toneboard.OscillatorConfig{Family: toneboard.FM, Shape: toneboard.Square}
	expected.Envelope.Attack = 0.2
	expected.Envelope.Release = 2
	if s != expected {
		t.Fatalf("got %+v, expected %+v", s, expected)
	}
}

func TestReadSettingsEmpty(t *testing.T) {
	s, err := toneboard.ReadSettings(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if s != toneboard.DefaultSettings() {
		t.Fatalf("an empty document should give the defaults, got %+v", s)
	}
}

func TestReadSettingsRejects(t *testing.T) {
	docs := []string{
		"oscillator: {family: pwm}",
		"oscillator: {shape: noise}",
		"envelope: {attack: 0}",
		"envelope: {hold: 1}",
		"volume: 3",
	}
	for _, doc := range docs {
		if _, err := toneboard.ReadSettings(strings.NewReader(doc)); err == nil {
			t.Errorf("ReadSettings(%q) should have failed", doc)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := toneboard.DefaultSettings()
	s.Oscillator.Family = toneboard.Fat
	b, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	if !strings.Contains(string(b), "family: fat") {
		t.Fatalf("family should be written by name, got:\n%s", b)
	}
	back, err := toneboard.ReadSettings(strings.NewReader(string(b)))
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if back != s {
		t.Fatalf("got %+v, expected %+v", back, s)
	}
}
