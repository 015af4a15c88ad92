package toneboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type (
	// Note is one of the seven natural notes of the scale.
	Note byte

	// Key is a single key of the keyboard: a natural note, optionally raised
	// by a semitone, in a given octave.
	Key struct {
		Note   Note
		Sharp  bool
		Octave int
	}

	// Category names a group of controls. The values are the names the
	// controls use on the wire.
	Category string

	// OscillatorFamily is the compound synthesis mode that prefixes the
	// waveform shape in the oscillator type identifier.
	OscillatorFamily int

	// Shape is the base waveform of the oscillator.
	Shape int

	// OscillatorConfig is the waveform selection; Type() gives the identifier
	// understood by the engine.
	OscillatorConfig struct {
		Family OscillatorFamily
		Shape  Shape
	}

	EnvelopeField int

	// EnvelopeConfig is the amplitude envelope applied to every note. Attack,
	// Decay and Release are in seconds, Sustain is a level.
	EnvelopeConfig struct {
		Attack  float64
		Decay   float64
		Sustain float64
		Release float64
	}

	// Settings is everything the user can configure.
	Settings struct {
		Oscillator OscillatorConfig
		Envelope   EnvelopeConfig
	}
)

const (
	C Note = 'C'
	D Note = 'D'
	E Note = 'E'
	F Note = 'F'
	G Note = 'G'
	A Note = 'A'
	B Note = 'B'
)

// Scale lists the natural notes in keyboard order.
var Scale = []Note{C, D, E, F, G, A, B}

const (
	CategoryFamily   Category = "type"
	CategoryShape    Category = "shape"
	CategoryEnvelope Category = "envelope"
)

const (
	NoPrefix OscillatorFamily = iota
	AM
	FM
	Fat
)

const (
	Sine Shape = iota
	Square
	Triangle
	Sawtooth
)

const (
	Attack EnvelopeField = iota
	Decay
	Sustain
	Release
)

// DefaultFamilyName is what the controls show for NoPrefix.
const DefaultFamilyName = "default"

// MinEnvelopeValue and EnvelopeStep are the constraints of the envelope
// inputs.
const (
	MinEnvelopeValue = 0.1
	EnvelopeStep     = 0.1
)

var (
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownFamily        = errors.New("unknown oscillator family")
	ErrUnknownShape         = errors.New("unknown oscillator shape")
	ErrUnknownEnvelopeField = errors.New("unknown envelope field")
	ErrInvalidEnvelopeValue = errors.New("invalid envelope value")
	ErrInvalidNote          = errors.New("invalid note")
)

var noteOffsets = map[Note]int{C: 0, D: 2, E: 4, F: 5, G: 7, A: 9, B: 11}

var familyNames = [...]string{DefaultFamilyName, "am", "fm", "fat"}
var familyPrefixes = [...]string{"", "am", "fm", "fat"}
var shapeNames = [...]string{"sine", "square", "triangle", "sawtooth"}
var envelopeFieldNames = [...]string{"attack", "decay", "sustain", "release"}

// Families, Shapes and EnvelopeFields list every variant in display order.
var (
	Families       = []OscillatorFamily{NoPrefix, AM, FM, Fat}
	Shapes         = []Shape{Sine, Square, Triangle, Sawtooth}
	EnvelopeFields = []EnvelopeField{Attack, Decay, Sustain, Release}
)

func DefaultSettings() Settings {
	return Settings{
		Oscillator: OscillatorConfig{Family: NoPrefix, Shape: Sine},
		Envelope: EnvelopeConfig{
			Attack:  0.1,
			Decay:   0.4,
			Sustain: 0.8,
			Release: 1.2,
		},
	}
}

// Note

// HasSharp reports whether the note has a black key above it. E and B do not.
func (n Note) HasSharp() bool { return n != E && n != B }

func (n Note) String() string { return string(rune(n)) }

func (n Note) Valid() bool {
	for _, s := range Scale {
		if s == n {
			return true
		}
	}
	return false
}

// Key

// ID returns the note identifier of the key, e.g. "C4" or "A#5".
func (k Key) ID() string {
	var sb strings.Builder
	sb.WriteByte(byte(k.Note))
	if k.Sharp {
		sb.WriteByte('#')
	}
	sb.WriteString(strconv.Itoa(k.Octave))
	return sb.String()
}

func (k Key) String() string { return k.ID() }

// Label is the text printed on the key: the note with its sharp, without the
// octave.
func (k Key) Label() string {
	if k.Sharp {
		return k.Note.String() + "#"
	}
	return k.Note.String()
}

// Semitone returns the key as a semitone number where C0 = 0.
func (k Key) Semitone() int {
	s := k.Octave*12 + noteOffsets[k.Note]
	if k.Sharp {
		s++
	}
	return s
}

// ParseKey parses a note identifier such as "C4", "A#5" or "Bb3". Flats are
// accepted and normalized to the sharp of the note below; a flat with no
// sharp below it (Cb, Fb) is an error.
func ParseKey(id string) (Key, error) {
	if len(id) < 2 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidNote, id)
	}
	k := Key{Note: Note(strings.ToUpper(id[:1])[0])}
	if !k.Note.Valid() {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidNote, id)
	}
	rest := id[1:]
	switch rest[0] {
	case '#':
		if !k.Note.HasSharp() {
			return Key{}, fmt.Errorf("%w: %q has no sharp", ErrInvalidNote, id)
		}
		k.Sharp = true
		rest = rest[1:]
	case 'b':
		i := strings.IndexByte("CDEFGAB", byte(k.Note))
		if i == 0 || !Scale[i-1].HasSharp() {
			return Key{}, fmt.Errorf("%w: %q has no flat", ErrInvalidNote, id)
		}
		k.Note, k.Sharp = Scale[i-1], true
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: %v", ErrInvalidNote, id, err)
	}
	k.Octave = octave
	return k, nil
}

// Category

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryFamily, CategoryShape, CategoryEnvelope:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// OscillatorFamily

// Prefix is the part the family contributes to the oscillator type
// identifier. NoPrefix contributes nothing.
func (f OscillatorFamily) Prefix() string {
	if f < 0 || int(f) >= len(familyPrefixes) {
		return ""
	}
	return familyPrefixes[f]
}

func (f OscillatorFamily) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("OscillatorFamily(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily parses a family name as the controls send it. Both the
// "default" sentinel and the empty string mean NoPrefix.
func ParseFamily(s string) (OscillatorFamily, error) {
	if s == "" {
		return NoPrefix, nil
	}
	for i, name := range familyNames {
		if name == s {
			return OscillatorFamily(i), nil
		}
	}
	return NoPrefix, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Shape

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

func ParseShape(s string) (Shape, error) {
	for i, name := range shapeNames {
		if name == s {
			return Shape(i), nil
		}
	}
	return Sine, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// OscillatorConfig

// Type returns the oscillator type identifier: the family prefix followed by
// the shape, e.g. "sine", "amsine" or "fmsquare".
func (o OscillatorConfig) Type() string {
	return o.Family.Prefix() + o.Shape.String()
}

// ParseOscillatorType is the inverse of OscillatorConfig.Type.
func ParseOscillatorType(id string) (OscillatorConfig, error) {
	for i := len(familyPrefixes) - 1; i >= 0; i-- {
		prefix := familyPrefixes[i]
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if shape, err := ParseShape(id[len(prefix):]); err == nil {
			return OscillatorConfig{Family: OscillatorFamily(i), Shape: shape}, nil
		}
	}
	return OscillatorConfig{}, fmt.Errorf("%w: %q", ErrUnknownShape, id)
}

// EnvelopeField

func (f EnvelopeField) String() string {
	if f < 0 || int(f) >= len(envelopeFieldNames) {
		return fmt.Sprintf("EnvelopeField(%d)", int(f))
	}
	return envelopeFieldNames[f]
}

func ParseEnvelopeField(s string) (EnvelopeField, error) {
	for i, name := range envelopeFieldNames {
		if name == s {
			return EnvelopeField(i), nil
		}
	}
	return Attack, fmt.Errorf("%w: %q", ErrUnknownEnvelopeField, s)
}

// EnvelopeConfig

func (e EnvelopeConfig) Get(field EnvelopeField) float64 {
	switch field {
	case Attack:
		return e.Attack
	case Decay:
		return e.Decay
	case Sustain:
		return e.Sustain
	case Release:
		return e.Release
	}
	return 0
}

func (e *EnvelopeConfig) Set(field EnvelopeField, value float64) error {
	switch field {
	case Attack:
		e.Attack = value
	case Decay:
		e.Decay = value
	case Sustain:
		e.Sustain = value
	case Release:
		e.Release = value
	default:
		return fmt.Errorf("%w: %v", ErrUnknownEnvelopeField, field)
	}
	return nil
}

// ValidateEnvelopeValue checks a value against the constraints of the
// envelope inputs.
func ValidateEnvelopeValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < MinEnvelopeValue {
		return fmt.Errorf("%w: %v (minimum %v)", ErrInvalidEnvelopeValue, value, MinEnvelopeValue)
	}
	return nil
}

// ParseEnvelopeValue parses the text of an envelope input.
func ParseEnvelopeValue(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEnvelopeValue, s)
	}
	if err := ValidateEnvelopeValue(value); err != nil {
		return 0, err
	}
	return value, nil
}

func (e EnvelopeConfig) Validate() error {
	for _, f := range EnvelopeFields {
		if err := ValidateEnvelopeValue(e.Get(f)); err != nil {
			return fmt.Errorf("envelope %v: %w", f, err)
		}
	}
	return nil
}
