package engine

import (
	"fmt"
	"math"

	"github.com/vsariola/toneboard"
)

type envelopeStage int

const (
	envStageIdle envelopeStage = iota
	envStageAttack
	envStageDecay
	envStageSustain
	envStageRelease
)

// envelope is a linear ADSR. The parameters can change at any time; the
// change takes effect from the next sample on.
type envelope struct {
	params       toneboard.EnvelopeConfig
	stage        envelopeStage
	level        float64
	releaseLevel float64
}

// ValidateEnvelope checks a value for an envelope field the way the engine
// does before accepting it: times must be finite and non-negative, the
// sustain level must be within [0, 1].
func ValidateEnvelope(field toneboard.EnvelopeField, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("envelope %v must be finite, got %v", field, value)
	}
	switch field {
	case toneboard.Attack, toneboard.Decay, toneboard.Release:
		if value < 0 {
			return fmt.Errorf("envelope %v must be >= 0, got %v", field, value)
		}
	case toneboard.Sustain:
		if value < 0 || value > 1 {
			return fmt.Errorf("envelope sustain must be within [0, 1], got %v", value)
		}
	default:
		return fmt.Errorf("%w: %v", toneboard.ErrUnknownEnvelopeField, field)
	}
	return nil
}

func (e *envelope) trigger() {
	e.stage = envStageAttack
}

func (e *envelope) release() {
	if e.stage == envStageIdle {
		return
	}
	e.releaseLevel = e.level
	e.stage = envStageRelease
}

func (e *envelope) active() bool {
	return e.stage != envStageIdle
}

// next advances the envelope by dt seconds and returns the new level.
func (e *envelope) next(dt float64) float64 {
	p := &e.params
	switch e.stage {
	case envStageAttack:
		if p.Attack <= 0 {
			e.level = 1
		} else {
			e.level += dt / p.Attack
		}
		if e.level >= 1 {
			e.level = 1
			e.stage = envStageDecay
		}
	case envStageDecay:
		if p.Decay <= 0 {
			e.level = p.Sustain
		} else {
			e.level -= dt * (1 - p.Sustain) / p.Decay
		}
		if e.level <= p.Sustain {
			e.level = p.Sustain
			e.stage = envStageSustain
		}
	case envStageSustain:
		e.level = p.Sustain
	case envStageRelease:
		if p.Release <= 0 || e.releaseLevel <= 0 {
			e.level = 0
		} else {
			e.level -= dt * e.releaseLevel / p.Release
		}
		if e.level <= 0 {
			e.level = 0
			e.stage = envStageIdle
		}
	default:
		e.level = 0
	}
	return e.level
}
