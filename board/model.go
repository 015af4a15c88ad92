package board

import (
	"fmt"

	"github.com/vsariola/toneboard"
)

type (
	// Model is the single owner of the oscillator and envelope settings.
	// Every update overwrites the model's own copy and is then pushed into the
	// engine, which keeps a live copy of its own. Nothing is rolled back if the
	// engine rejects an update; the engine's error is returned to the caller.
	//
	// Model is not safe for concurrent use: it is meant to be used from the
	// goroutine running the user interface.
	Model struct {
		settings toneboard.Settings
		engine   toneboard.Engine
		alerts   Alerts
	}
)

// NoteDuration is how long a key press sounds: a sixteenth note.
const NoteDuration = "16n"

func NewModel(engine toneboard.Engine, settings toneboard.Settings) *Model {
	return &Model{settings: settings, engine: engine}
}

// Settings returns a copy of the current settings.
func (m *Model) Settings() toneboard.Settings { return m.settings }

const reportAlertName = "ControlError"

func (m *Model) Alerts() *Alerts { return &m.alerts }

// PlayNote plays the note identified by e.g. "C4" or "A#5" for NoteDuration.
func (m *Model) PlayNote(note string) error {
	if err := m.engine.TriggerAttackRelease(note, NoteDuration); err != nil {
		return fmt.Errorf("could not play note %v: %w", note, err)
	}
	return nil
}

// UpdateEnvelope sets one envelope field, first in the model and then in the
// engine. Values below the input minimum are rejected before anything
// changes.
func (m *Model) UpdateEnvelope(field toneboard.EnvelopeField, value float64) error {
	if err := toneboard.ValidateEnvelopeValue(value); err != nil {
		return err
	}
	if err := m.settings.Envelope.Set(field, value); err != nil {
		return err
	}
	if err := m.engine.SetEnvelope(field, value); err != nil {
		return fmt.Errorf("engine rejected envelope %v = %v: %w", field, value, err)
	}
	return nil
}

// UpdateOscillatorType sets the family (category "type") or the shape
// (category "shape") of the oscillator and pushes the combined oscillator
// type to the engine. The family "default" means no prefix.
func (m *Model) UpdateOscillatorType(category toneboard.Category, value string) error {
	switch category {
	case toneboard.CategoryFamily:
		family, err := toneboard.ParseFamily(value)
		if err != nil {
			return err
		}
		m.settings.Oscillator.Family = family
	case toneboard.CategoryShape:
		shape, err := toneboard.ParseShape(value)
		if err != nil {
			return err
		}
		m.settings.Oscillator.Shape = shape
	default:
		return fmt.Errorf("%w: %q is not an oscillator category", toneboard.ErrUnknownCategory, category)
	}
	id := m.settings.Oscillator.Type()
	if err := m.engine.SetOscillatorType(id); err != nil {
		return fmt.Errorf("engine rejected oscillator type %v: %w", id, err)
	}
	return nil
}

// Dispatch is the entry point for the controls. A non-empty envelopeField
// routes the value to that envelope field, parsing it as a number; otherwise
// the value is an oscillator family or shape, depending on category.
func (m *Model) Dispatch(category toneboard.Category, value string, envelopeField string) error {
	if envelopeField != "" {
		field, err := toneboard.ParseEnvelopeField(envelopeField)
		if err != nil {
			return err
		}
		v, err := toneboard.ParseEnvelopeValue(value)
		if err != nil {
			return err
		}
		return m.UpdateEnvelope(field, v)
	}
	category, err := toneboard.ParseCategory(string(category))
	if err != nil {
		return err
	}
	return m.UpdateOscillatorType(category, value)
}

// Report shows err as an error alert, replacing the previously reported one.
// It does nothing for a nil error.
func (m *Model) Report(err error) {
	if err == nil {
		return
	}
	m.alerts.AddNamed(reportAlertName, err.Error(), Error)
}

// ProcessMsg handles a message sent to the model by the player.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch e := msg.Data.(type) {
	case Alert:
		m.alerts.AddNamed(e.Name, e.Message, e.Priority)
	case func():
		e()
	}
}
