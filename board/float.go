package board

import (
	"math"

	"github.com/vsariola/toneboard"
)

type (
	// Float is a bounded value that steps in fixed increments, e.g. one field
	// of the envelope as edited by a numeric input.
	Float struct {
		FloatData
	}

	FloatData interface {
		Value() float64
		Range() FloatRange

		setValue(float64) error
	}

	FloatRange struct {
		Min, Max, Step float64
	}

	EnvelopeValue struct {
		model *Model
		field toneboard.EnvelopeField
	}
)

// Add moves the value by the given number of steps. The result is clamped to
// the range and rounded to whole steps.
func (v Float) Add(steps int) error {
	r := v.Range()
	return v.Set(v.Value() + float64(steps)*r.Step)
}

// Set clamps the value to the range and sets it, unless it is already
// current.
func (v Float) Set(value float64) error {
	value = v.Range().Clamp(value)
	if value == v.Value() {
		return nil
	}
	return v.setValue(value)
}

func (r FloatRange) Clamp(value float64) float64 {
	if r.Step > 0 {
		value = math.Round(value/r.Step) * r.Step
		value = math.Round(value*1e6) / 1e6
	}
	return math.Max(math.Min(value, r.Max), r.Min)
}

// Envelope returns the envelope field as a Float bound to UpdateEnvelope.
func (m *Model) Envelope(field toneboard.EnvelopeField) Float {
	return Float{&EnvelopeValue{model: m, field: field}}
}

func (v *EnvelopeValue) Value() float64 { return v.model.settings.Envelope.Get(v.field) }

// Range of the sustain level stops at full volume; the times are unbounded.
func (v *EnvelopeValue) Range() FloatRange {
	r := FloatRange{Min: toneboard.MinEnvelopeValue, Max: math.Inf(1), Step: toneboard.EnvelopeStep}
	if v.field == toneboard.Sustain {
		r.Max = 1
	}
	return r
}

func (v *EnvelopeValue) setValue(value float64) error {
	return v.model.UpdateEnvelope(v.field, value)
}
