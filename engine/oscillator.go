package engine

import (
	"math"

	"github.com/vsariola/toneboard"
)

const (
	// modulator of the AM and FM families runs at harmonicity times the
	// carrier frequency
	harmonicity     = 1.0
	modulationIndex = 2.0
	fatVoices       = 3
	fatSpreadCents  = 20.0
)

// oscillator produces the waveform of one oscillator type. Phases are kept in
// [0, 1).
type oscillator struct {
	config   toneboard.OscillatorConfig
	phases   [fatVoices]float64
	modPhase float64
	detune   [fatVoices]float64
}

func newOscillator(config toneboard.OscillatorConfig) oscillator {
	o := oscillator{config: config}
	for i := range o.detune {
		cents := fatSpreadCents * (float64(i)/float64(fatVoices-1) - 0.5)
		o.detune[i] = math.Pow(2, cents/1200)
	}
	o.reset()
	return o
}

func (o *oscillator) reset() {
	for i := range o.phases {
		o.phases[i] = float64(i) / fatVoices
	}
	o.modPhase = 0
}

// Waveform evaluates one cycle of the shape at phase p in [0, 1).
func Waveform(shape toneboard.Shape, p float64) float64 {
	switch shape {
	case toneboard.Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case toneboard.Triangle:
		if p < 0.25 {
			return 4 * p
		}
		if p < 0.75 {
			return 2 - 4*p
		}
		return 4*p - 4
	case toneboard.Sawtooth:
		if p < 0.5 {
			return 2 * p
		}
		return 2*p - 2
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

func wrap(p float64) float64 {
	return p - math.Floor(p)
}

// next returns the next sample of a note at freq Hz.
func (o *oscillator) next(freq, sampleRate float64) float64 {
	inc := freq / sampleRate
	switch o.config.Family {
	case toneboard.AM:
		mod := 0.5 + 0.5*Waveform(toneboard.Square, o.modPhase)
		out := Waveform(o.config.Shape, o.phases[0]) * mod
		o.phases[0] = wrap(o.phases[0] + inc)
		o.modPhase = wrap(o.modPhase + inc*harmonicity)
		return out
	case toneboard.FM:
		mod := Waveform(toneboard.Square, o.modPhase)
		out := Waveform(o.config.Shape, o.phases[0])
		o.phases[0] = wrap(o.phases[0] + inc*(1+modulationIndex*harmonicity*mod))
		o.modPhase = wrap(o.modPhase + inc*harmonicity)
		return out
	case toneboard.Fat:
		var out float64
		for i := range o.phases {
			out += Waveform(o.config.Shape, o.phases[i])
			o.phases[i] = wrap(o.phases[i] + inc*o.detune[i])
		}
		return out / fatVoices
	default:
		out := Waveform(o.config.Shape, o.phases[0])
		o.phases[0] = wrap(o.phases[0] + inc)
		return out
	}
}
