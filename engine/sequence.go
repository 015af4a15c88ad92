package engine

import (
	"fmt"

	"github.com/vsariola/toneboard"
)

// maxTail bounds how long Sequence keeps rendering after the last note, in
// seconds.
const maxTail = 30

// Sequence plays the notes one after another, a new note every step, each
// held for duration. The buffer continues after the last note until the
// synth falls silent. Durations are time tokens such as "8n".
func (s *Synth) Sequence(notes []string, duration, step string) (toneboard.AudioBuffer, error) {
	stepSeconds, err := ParseDuration(step, s.bpm)
	if err != nil {
		return nil, fmt.Errorf("invalid step: %w", err)
	}
	stepFrames := int(stepSeconds*float64(s.sampleRate) + 0.5)
	buffer := make(toneboard.AudioBuffer, 0, stepFrames*len(notes))
	for _, note := range notes {
		if err := s.TriggerAttackRelease(note, duration); err != nil {
			return nil, err
		}
		buffer = append(buffer, toneboard.Fill(s, stepFrames)...)
	}
	for tail := 0; s.Active() && tail < maxTail*s.sampleRate; tail += maxBlockSize {
		buffer = append(buffer, toneboard.Fill(s, maxBlockSize)...)
	}
	return buffer, nil
}
