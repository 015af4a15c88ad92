package board

import (
	"errors"
	"fmt"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/engine"
)

type (
	// Player owns the synth and runs in the audio goroutine. It is controlled
	// only through messages on Broker.ToPlayer, which it applies at the start
	// of every buffer it renders.
	Player struct {
		synth  toneboard.Synth
		broker *Broker
	}

	// Remote is the Engine handed to the Model when the synth lives in the
	// Player. Every call is checked against the engine's rules right away, so
	// that rejections reach the caller, and then forwarded to the player.
	Remote struct {
		broker *Broker
	}

	noteMsg struct {
		note     string
		duration string
	}

	envelopeMsg struct {
		field toneboard.EnvelopeField
		value float64
	}

	oscillatorMsg struct {
		id string
	}
)

// ErrPlayerBusy is returned by Remote when the player has not kept up with
// the messages sent to it.
var ErrPlayerBusy = errors.New("player message queue is full")

func NewPlayer(broker *Broker, synth toneboard.Synth) *Player {
	return &Player{broker: broker, synth: synth}
}

// Process applies the pending messages and renders the buffer.
func (p *Player) Process(buffer toneboard.AudioBuffer) {
	p.processMessages()
	p.synth.Render(buffer)
}

func (p *Player) processMessages() {
loop:
	for {
		select {
		case msg := <-p.broker.ToPlayer:
			if err := p.apply(msg); err != nil {
				p.sendAlert("PlayerError", err.Error(), Error)
			}
		default:
			break loop
		}
	}
}

func (p *Player) apply(msg any) error {
	switch m := msg.(type) {
	case noteMsg:
		return p.synth.TriggerAttackRelease(m.note, m.duration)
	case envelopeMsg:
		return p.synth.SetEnvelope(m.field, m.value)
	case oscillatorMsg:
		return p.synth.SetOscillatorType(m.id)
	}
	return fmt.Errorf("player received unknown message %T", msg)
}

func (p *Player) sendAlert(name, message string, priority AlertPriority) {
	TrySend(p.broker.ToModel, MsgToModel{Data: Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
	}})
}

func NewRemote(broker *Broker) *Remote {
	return &Remote{broker: broker}
}

func (r *Remote) TriggerAttackRelease(note string, duration string) error {
	if _, err := engine.NoteFrequency(note); err != nil {
		return err
	}
	if _, err := engine.ParseDuration(duration, engine.DefaultBPM); err != nil {
		return err
	}
	return r.send(noteMsg{note: note, duration: duration})
}

func (r *Remote) SetEnvelope(field toneboard.EnvelopeField, value float64) error {
	if err := engine.ValidateEnvelope(field, value); err != nil {
		return err
	}
	return r.send(envelopeMsg{field: field, value: value})
}

func (r *Remote) SetOscillatorType(id string) error {
	if _, err := toneboard.ParseOscillatorType(id); err != nil {
		return err
	}
	return r.send(oscillatorMsg{id: id})
}

func (r *Remote) send(msg any) error {
	if !TrySend(r.broker.ToPlayer, msg) {
		return ErrPlayerBusy
	}
	return nil
}
