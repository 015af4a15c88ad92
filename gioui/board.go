package gioui

import (
	"image"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/board"
	"github.com/vsariola/toneboard/keys"
	"github.com/vsariola/toneboard/version"
)

type (
	// Board is the window of the keyboard: the controls on top, the keys
	// below them and the alerts popping up from the bottom.
	Board struct {
		Theme      *Theme
		Keyboard   *Keyboard
		Options    *OptionsPanel
		PopupAlert *AlertsState

		preferences Preferences
		broker      *board.Broker

		*board.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewBoard(model *board.Model, broker *board.Broker) *Board {
	b := &Board{
		Theme:      NewTheme(),
		Options:    NewOptionsPanel(model),
		PopupAlert: NewAlertsState(),
		broker:     broker,
		Model:      model,
	}
	b.preferences = MakePreferences()
	if b.preferences.YmlError != nil {
		model.Alerts().AddAlert(board.Alert{
			Priority: board.Warning,
			Message:  b.preferences.YmlError.Error(),
			Duration: 10 * time.Second,
		})
	}
	kp := b.preferences.Keyboard
	b.Keyboard = NewKeyboard(keys.Layout(toneboard.Scale, kp.Octaves, kp.LowOctave))
	return b
}

// Main runs the window until it is closed, or until something is sent to
// Broker.CloseGUI. Messages to the model are processed in between frames.
// FinishedGUI is closed when Main returns.
func (b *Board) Main() {
	var ops op.Ops
	w := new(app.Window)
	w.Option(app.Title(title()))
	w.Option(app.Size(b.preferences.WindowSize()))
	if b.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
F:
	for {
		select {
		case e := <-b.broker.ToModel:
			b.ProcessMsg(e)
			w.Invalidate()
		case <-b.broker.CloseGUI:
			w.Perform(system.ActionClose)
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				b.Layout(gtx)
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
	close(b.broker.FinishedGUI)
}

func title() string {
	if version.VersionOrHash == "" {
		return "Toneboard"
	}
	return "Toneboard " + version.VersionOrHash
}

func (b *Board) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, b.Theme.Material.Bg)
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return b.Options.Layout(gtx, b.Theme)
		}),
		layout.Flexed(1, func(gtx C) D {
			return b.Theme.OptionsInset.Layout(gtx, KeyboardWidget(b.Theme, b.Keyboard, b.playNote).Layout)
		}),
	)
	alerts := Alerts(b.Alerts(), b.Theme, b.PopupAlert)
	alerts.Layout(gtx)
}

func (b *Board) playNote(note string) {
	b.Report(b.PlayNote(note))
}
