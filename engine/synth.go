package engine

import (
	"fmt"
	"math"

	"github.com/viterin/vek/vek32"
	"github.com/vsariola/toneboard"
)

type (
	// Synth is a monophonic synthesizer: one oscillator shaped by one ADSR
	// envelope. A new note takes over the oscillator and restarts the attack
	// from the current level. Synth is not safe for concurrent use; it is
	// meant to be owned by the audio goroutine.
	Synth struct {
		sampleRate int
		bpm        float64
		volume     float32

		osc       oscillator
		env       envelope
		freq      float64
		releaseIn int // frames until the pending release, -1 if none

		oscBuf []float32
		envBuf []float32
		outBuf []float32
	}
)

const (
	DefaultSampleRate = 44100
	DefaultBPM        = 120
	DefaultVolume     = 0.25
	maxBlockSize      = 512
)

// New creates a synth from the given settings. The envelope is checked
// with the engine's own rules.
func New(settings toneboard.Settings, sampleRate int) (*Synth, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %v", sampleRate)
	}
	for _, f := range toneboard.EnvelopeFields {
		if err := ValidateEnvelope(f, settings.Envelope.Get(f)); err != nil {
			return nil, err
		}
	}
	if _, err := toneboard.ParseOscillatorType(settings.Oscillator.Type()); err != nil {
		return nil, err
	}
	return &Synth{
		sampleRate: sampleRate,
		bpm:        DefaultBPM,
		volume:     DefaultVolume,
		osc:        newOscillator(settings.Oscillator),
		env:        envelope{params: settings.Envelope},
		releaseIn:  -1,
	}, nil
}

func (s *Synth) SampleRate() int { return s.sampleRate }

// Settings returns the live oscillator and envelope of the synth.
func (s *Synth) Settings() toneboard.Settings {
	return toneboard.Settings{Oscillator: s.osc.config, Envelope: s.env.params}
}

// Active reports whether the synth is producing sound.
func (s *Synth) Active() bool { return s.env.active() }

// SetBPM changes the tempo used to interpret note durations.
func (s *Synth) SetBPM(bpm float64) error {
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return fmt.Errorf("invalid tempo %v", bpm)
	}
	s.bpm = bpm
	return nil
}

// SetVolume sets the output gain, linear.
func (s *Synth) SetVolume(volume float32) {
	s.volume = volume
}

func (s *Synth) TriggerAttackRelease(note string, duration string) error {
	freq, err := NoteFrequency(note)
	if err != nil {
		return err
	}
	seconds, err := ParseDuration(duration, s.bpm)
	if err != nil {
		return err
	}
	if !s.env.active() {
		s.osc.reset()
	}
	s.freq = freq
	s.env.trigger()
	s.releaseIn = int(seconds*float64(s.sampleRate) + 0.5)
	return nil
}

// Release starts the release of the current note immediately.
func (s *Synth) Release() {
	s.env.release()
	s.releaseIn = -1
}

func (s *Synth) SetEnvelope(field toneboard.EnvelopeField, value float64) error {
	if err := ValidateEnvelope(field, value); err != nil {
		return err
	}
	return s.env.params.Set(field, value)
}

func (s *Synth) SetOscillatorType(id string) error {
	config, err := toneboard.ParseOscillatorType(id)
	if err != nil {
		return err
	}
	s.osc.config = config
	return nil
}

// Render fills the buffer, applying the pending release at its exact frame.
func (s *Synth) Render(buffer toneboard.AudioBuffer) {
	for len(buffer) > 0 {
		if s.releaseIn == 0 {
			s.Release()
		}
		n := min(len(buffer), maxBlockSize)
		if s.releaseIn > 0 && s.releaseIn < n {
			n = s.releaseIn
		}
		s.renderBlock(buffer[:n])
		if s.releaseIn > 0 {
			s.releaseIn -= n
		}
		buffer = buffer[n:]
	}
}

func (s *Synth) renderBlock(block toneboard.AudioBuffer) {
	n := len(block)
	if !s.env.active() {
		for i := range block {
			block[i] = [2]float32{}
		}
		return
	}
	if cap(s.oscBuf) < n {
		s.oscBuf = make([]float32, maxBlockSize)
		s.envBuf = make([]float32, maxBlockSize)
		s.outBuf = make([]float32, maxBlockSize)
	}
	osc, env, out := s.oscBuf[:n], s.envBuf[:n], s.outBuf[:n]
	sr := float64(s.sampleRate)
	dt := 1 / sr
	for i := range osc {
		osc[i] = float32(s.osc.next(s.freq, sr))
		env[i] = float32(s.env.next(dt))
	}
	vek32.Mul_Into(out, osc, env)
	vek32.MulNumber_Inplace(out, s.volume)
	for i, v := range out {
		block[i] = [2]float32{v, v}
	}
}
