package board

import "time"

type (
	// Broker connects the model, living in the GUI goroutine, to the player,
	// living in the audio goroutine. Every recipient has its own buffered
	// channel; senders never block (see TrySend).
	//
	// CloseGUI has a capacity of 1, so anyone can request the GUI to close by
	// sending an empty struct without blocking. FinishedGUI is closed by the
	// GUI when it is done.
	Broker struct {
		ToPlayer chan any
		ToModel  chan MsgToModel

		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// MsgToModel is a message sent to the model. Data is either an Alert or a
	// func() to be run in the GUI goroutine.
	MsgToModel struct {
		Data any
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToPlayer:    make(chan any, 1024),
		ToModel:     make(chan MsgToModel, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
