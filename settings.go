package toneboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// settingsYaml is the on-disk layout of Settings. The oscillator is written
// by name so that the files stay readable.
type settingsYaml struct {
	Oscillator struct {
		Family OscillatorFamily `yaml:"family"`
		Shape  Shape            `yaml:"shape"`
	} `yaml:"oscillator"`
	Envelope struct {
		Attack  float64 `yaml:"attack"`
		Decay   float64 `yaml:"decay"`
		Sustain float64 `yaml:"sustain"`
		Release float64 `yaml:"release"`
	} `yaml:"envelope"`
}

// ReadSettings decodes settings from YAML. Fields missing from the document
// keep their default values; unknown fields are an error.
func ReadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	var y settingsYaml
	y.Oscillator.Family = s.Oscillator.Family
	y.Oscillator.Shape = s.Oscillator.Shape
	y.Envelope.Attack = s.Envelope.Attack
	y.Envelope.Decay = s.Envelope.Decay
	y.Envelope.Sustain = s.Envelope.Sustain
	y.Envelope.Release = s.Envelope.Release
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("could not decode settings: %w", err)
	}
	s.Oscillator = OscillatorConfig{Family: y.Oscillator.Family, Shape: y.Oscillator.Shape}
	s.Envelope = EnvelopeConfig{
		Attack:  y.Envelope.Attack,
		Decay:   y.Envelope.Decay,
		Sustain: y.Envelope.Sustain,
		Release: y.Envelope.Release,
	}
	if err := s.Envelope.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads settings from a YAML file.
func LoadSettings(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("could not read settings file: %w", err)
	}
	s, err := ReadSettings(bytes.NewReader(b))
	if err != nil {
		return Settings{}, fmt.Errorf("%v: %w", path, err)
	}
	return s, nil
}

// MarshalYAML writes the settings in the same layout ReadSettings expects.
func (s Settings) MarshalYAML() (interface{}, error) {
	var y settingsYaml
	y.Oscillator.Family = s.Oscillator.Family
	y.Oscillator.Shape = s.Oscillator.Shape
	y.Envelope.Attack = s.Envelope.Attack
	y.Envelope.Decay = s.Envelope.Decay
	y.Envelope.Sustain = s.Envelope.Sustain
	y.Envelope.Release = s.Envelope.Release
	return y, nil
}

func (f OscillatorFamily) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *OscillatorFamily) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	family, err := ParseFamily(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = family
	return nil
}

func (s Shape) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Shape) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	shape, err := ParseShape(str)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = shape
	return nil
}
