package oto

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/toneboard"
)

type (
	OtoContext struct {
		context    *oto.Context
		sampleRate int
	}

	// OtoOutput is the io.Reader oto pulls audio from. Every Read asks the
	// fill function for as many frames as fit into the read.
	OtoOutput struct {
		player    *oto.Player
		fill      func(toneboard.AudioBuffer) error
		buffer    toneboard.AudioBuffer
		tmpBuffer []byte
		closeOnce sync.Once
		done      chan struct{}
		err       error
	}
)

const (
	bytesPerFrame = 8 // two float32 channels
	otoBufferSize = 4096
)

// NewContext opens the audio device and waits until it is ready.
func NewContext(sampleRate int) (*OtoContext, error) {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{context: context, sampleRate: sampleRate}, nil
}

func (c *OtoContext) SampleRate() int { return c.sampleRate }

// Play starts pulling audio from fill until the returned output is closed or
// fill returns an error.
func (c *OtoContext) Play(fill func(toneboard.AudioBuffer) error) toneboard.CloserWaiter {
	o := &OtoOutput{
		fill:      fill,
		buffer:    make(toneboard.AudioBuffer, otoBufferSize/bytesPerFrame),
		tmpBuffer: make([]byte, 0, otoBufferSize),
		done:      make(chan struct{}),
	}
	o.player = c.context.NewPlayer(o)
	o.player.Play()
	return o
}

// Read implements io.Reader for the oto player.
func (o *OtoOutput) Read(p []byte) (int, error) {
	select {
	case <-o.done:
		return 0, io.EOF
	default:
	}
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(o.buffer) < frames {
		o.buffer = make(toneboard.AudioBuffer, frames)
	}
	buffer := o.buffer[:frames]
	if err := o.fill(buffer); err != nil {
		o.err = err
		o.closeOnce.Do(func() { close(o.done) })
		return 0, io.EOF
	}
	// we reuse the old capacity of tmpBuffer by setting its length to zero
	o.tmpBuffer = FloatBufferToFloat32LE(buffer, o.tmpBuffer[:0])
	return copy(p, o.tmpBuffer), nil
}

// Close stops the player.
func (o *OtoOutput) Close() error {
	o.closeOnce.Do(func() { close(o.done) })
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

// Wait blocks until the output has been closed, and the audio already
// queued has been played. It returns the error that stopped the fill
// function, if any.
func (o *OtoOutput) Wait() error {
	<-o.done
	for o.player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return o.err
}
