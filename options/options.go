// Package options describes the controls that configure the oscillator and
// the envelope, and derives their initial state from the current settings.
package options

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vsariola/toneboard"
)

type (
	// Spec is the static description of one group of controls.
	Spec struct {
		Title    string
		Category toneboard.Category
		Kind     Kind
		Values   []string
	}

	Kind int

	// Group is one rendered group of controls, e.g. all the waveform shapes.
	Group struct {
		Title    string
		Category toneboard.Category
		Kind     Kind
		Controls []Control
	}

	// Control is a single input: a radio button of a choice group, or a
	// number input of the envelope.
	Control struct {
		Category toneboard.Category
		Kind     Kind
		// Value is the value the control sends when chosen. For number inputs
		// it is the current value as text.
		Value string
		// Label is the title cased Value for display.
		Label string
		// Field is the envelope field the control edits, empty for choices.
		Field   string
		Checked bool
		// Glyph is the image shown in place of the label, if any.
		Glyph string

		Number    float64
		Min, Step float64
	}

	// Update is what a control sends to the model when it changes.
	Update struct {
		Category toneboard.Category
		Value    string
		Field    string
	}
)

const (
	Choice Kind = iota
	Numeric
)

// Specs are the controls of the keyboard: oscillator family, waveform shape
// and envelope.
var Specs = []Spec{
	{
		Title:    "Oscillator",
		Category: toneboard.CategoryFamily,
		Kind:     Choice,
		Values:   []string{toneboard.DefaultFamilyName, "am", "fm", "fat"},
	}, {
		Title:    "Shape",
		Category: toneboard.CategoryShape,
		Kind:     Choice,
		Values:   []string{"sine", "square", "triangle", "sawtooth"},
	}, {
		Title:    "Envelope",
		Category: toneboard.CategoryEnvelope,
		Kind:     Numeric,
		Values:   []string{"attack", "decay", "sustain", "release"},
	},
}

var acronyms = map[string]string{"am": "AM", "fm": "FM"}

// Generate builds the control groups. Choice controls are checked when they
// match the current settings, which for the default settings means the first
// value of every group. Envelope controls start at the current envelope
// values.
func Generate(specs []Spec, settings toneboard.Settings) []Group {
	caser := cases.Title(language.English)
	groups := make([]Group, 0, len(specs))
	for _, spec := range specs {
		g := Group{Title: spec.Title, Category: spec.Category, Kind: spec.Kind}
		for _, value := range spec.Values {
			c := Control{Category: spec.Category, Kind: spec.Kind, Value: value, Label: caser.String(value)}
			if a, ok := acronyms[value]; ok {
				c.Label = a
			}
			switch spec.Kind {
			case Numeric:
				c.Field = value
				c.Label = caser.String(value)
				if field, err := toneboard.ParseEnvelopeField(value); err == nil {
					c.Number = settings.Envelope.Get(field)
				}
				c.Value = FormatNumber(c.Number)
				c.Min = toneboard.MinEnvelopeValue
				c.Step = toneboard.EnvelopeStep
			default:
				c.Checked = matches(spec.Category, value, settings)
				if spec.Category == toneboard.CategoryShape {
					c.Glyph = GlyphPath(value)
				}
			}
			g.Controls = append(g.Controls, c)
		}
		groups = append(groups, g)
	}
	return groups
}

func matches(category toneboard.Category, value string, settings toneboard.Settings) bool {
	switch category {
	case toneboard.CategoryFamily:
		f, err := toneboard.ParseFamily(value)
		return err == nil && f == settings.Oscillator.Family
	case toneboard.CategoryShape:
		s, err := toneboard.ParseShape(value)
		return err == nil && s == settings.Oscillator.Shape
	}
	return false
}

// GlyphPath is the image of a waveform shape.
func GlyphPath(shape string) string {
	return fmt.Sprintf("assets/img/shape-%s.svg", shape)
}

// FormatNumber prints an envelope value the way number inputs show it.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Update returns the message the control sends when its value becomes value.
// Choices always send their own value.
func (c Control) Update(value string) Update {
	if c.Kind == Choice {
		value = c.Value
	}
	return Update{Category: c.Category, Value: value, Field: c.Field}
}

// Checked returns the control currently checked in a choice group, if any.
func (g Group) Checked() (Control, bool) {
	for _, c := range g.Controls {
		if c.Checked {
			return c, true
		}
	}
	return Control{}, false
}

// InputType is the HTML input type of the kind.
func (k Kind) InputType() string {
	if k == Numeric {
		return "number"
	}
	return "radio"
}
