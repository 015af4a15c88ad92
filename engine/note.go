package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vsariola/toneboard"
)

const (
	// A4 is tuned to 440 Hz; all other keys are equal tempered around it.
	tuningFrequency = 440.0
	tuningSemitone  = 4*12 + 9
)

// MaxDuration is the longest note duration, in seconds, that ParseDuration
// accepts.
const MaxDuration = 3600

// Frequency returns the equal tempered frequency of the key in Hz.
func Frequency(key toneboard.Key) float64 {
	return tuningFrequency * math.Pow(2, float64(key.Semitone()-tuningSemitone)/12)
}

// NoteFrequency parses a note identifier such as "C4" and returns its
// frequency.
func NoteFrequency(note string) (float64, error) {
	key, err := toneboard.ParseKey(note)
	if err != nil {
		return 0, err
	}
	return Frequency(key), nil
}

// ParseDuration converts a time token into seconds at the given tempo, in 4/4
// time. Accepted tokens are "Nn" (an Nth note, e.g. "16n"), "Nn." (dotted),
// "Nt" (triplet), "Nm" (N measures) and plain numbers, which are seconds.
// Durations longer than MaxDuration are rejected.
func ParseDuration(token string, bpm float64) (float64, error) {
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return 0, fmt.Errorf("invalid tempo %v", bpm)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("empty duration")
	}
	beat := 60 / bpm
	dotted := strings.HasSuffix(token, ".")
	body := strings.TrimSuffix(token, ".")
	if len(body) == 0 {
		return 0, fmt.Errorf("invalid duration %q", token)
	}
	unit := body[len(body)-1]
	var seconds float64
	switch unit {
	case 'n', 't', 'm':
		n, err := strconv.Atoi(body[:len(body)-1])
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid duration %q", token)
		}
		switch unit {
		case 'n':
			seconds = beat * 4 / float64(n)
		case 't':
			seconds = beat * 4 / float64(n) * 2 / 3
		case 'm':
			seconds = beat * 4 * float64(n)
		}
	default:
		if dotted {
			return 0, fmt.Errorf("invalid duration %q", token)
		}
		s, err := strconv.ParseFloat(body, 64)
		if err != nil || s < 0 || math.IsNaN(s) {
			return 0, fmt.Errorf("invalid duration %q", token)
		}
		seconds = s
	}
	if dotted {
		seconds *= 1.5
	}
	if seconds > MaxDuration {
		return 0, fmt.Errorf("duration %q is longer than %v seconds", token, MaxDuration)
	}
	return seconds, nil
}
