package main

import (
	"errors"

	"github.com/vsariola/toneboard"
)

var errEndOfBuffer = errors.New("end of buffer")

// play plays the buffer once and waits until it has been heard.
func play(context toneboard.AudioContext, buffer toneboard.AudioBuffer) error {
	waiter := context.Play(bufferSource(buffer))
	if err := waiter.Wait(); err != nil && !errors.Is(err, errEndOfBuffer) {
		return err
	}
	return nil
}

// bufferSource returns a fill function that plays the buffer once and then
// stops the output with errEndOfBuffer.
func bufferSource(buffer toneboard.AudioBuffer) func(toneboard.AudioBuffer) error {
	pos := 0
	return func(buf toneboard.AudioBuffer) error {
		if pos >= len(buffer) {
			return errEndOfBuffer
		}
		n := copy(buf, buffer[pos:])
		clear(buf[n:])
		pos += n
		return nil
	}
}
