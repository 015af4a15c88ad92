package toneboard

type (
	// AudioBuffer is a buffer of stereo audio samples of variable length, each
	// sample represented by [2]float32. [0] is left channel, [1] is right.
	AudioBuffer [][2]float32

	// AudioContext plays audio by repeatedly asking the given function to
	// fill buffers, until the returned CloserWaiter is closed.
	AudioContext interface {
		Play(fill func(buf AudioBuffer) error) CloserWaiter
	}

	// CloserWaiter is a handle to something running in the background. Close
	// asks it to stop; Wait blocks until it has stopped.
	CloserWaiter interface {
		Close() error
		Wait() error
	}

	// Engine is the synthesis engine the configuration is mirrored into. It
	// keeps its own live copy of the oscillator type and the envelope.
	Engine interface {
		// TriggerAttackRelease starts the note identified by e.g. "C4" or
		// "A#5" and releases it after duration, given as a time token such
		// as "16n".
		TriggerAttackRelease(note string, duration string) error
		SetEnvelope(field EnvelopeField, value float64) error
		SetOscillatorType(id string) error
	}

	// Synth is an Engine that can render its output.
	Synth interface {
		Engine
		// Render fills the whole buffer.
		Render(buffer AudioBuffer)
		SampleRate() int
	}
)

// Fill renders the given number of frames from synth into a new buffer.
func Fill(synth Synth, frames int) AudioBuffer {
	buffer := make(AudioBuffer, frames)
	synth.Render(buffer)
	return buffer
}
