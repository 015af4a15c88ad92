package gioui

import (
	"image"
	"time"

	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/keys"
)

type (
	// Keyboard is the state of the on-screen keyboard. Keys are played by
	// pressing them with the pointer or with the computer keyboard keys bound
	// to them.
	Keyboard struct {
		groups   []keys.Group
		white    []keyArea
		black    []keyArea
		bindings map[key.Name]toneboard.Key
		filters  []event.Filter
		held     map[key.Name]bool
		lit      map[toneboard.Key]time.Time
	}

	// keyArea is the event target of a single key.
	keyArea struct {
		key toneboard.Key
	}

	KeyboardStyle struct {
		Keyboard *Keyboard
		Style    *KeyStyle
		Shaper   *text.Shaper
		// Play is called with the note identifier of every key pressed.
		Play func(note string)
	}
)

const keyLitDuration = 150 * time.Millisecond

func NewKeyboard(groups []keys.Group) *Keyboard {
	k := &Keyboard{
		groups:   groups,
		bindings: make(map[key.Name]toneboard.Key),
		held:     make(map[key.Name]bool),
		lit:      make(map[toneboard.Key]time.Time),
	}
	for _, g := range groups {
		k.white = append(k.white, keyArea{key: g.White})
		if g.HasBlack {
			k.black = append(k.black, keyArea{key: g.Black})
		}
	}
	for name, note := range keys.Bindings(groups) {
		k.bindings[key.Name(name)] = note
	}
	for name := range k.bindings {
		k.filters = append(k.filters, key.Filter{Name: name})
	}
	return k
}

func KeyboardWidget(th *Theme, k *Keyboard, play func(note string)) KeyboardStyle {
	return KeyboardStyle{Keyboard: k, Style: &th.Keys, Shaper: th.Material.Shaper, Play: play}
}

// Update handles the key events bound to the keyboard and the pointer presses
// on the keys. A computer keyboard key plays its note once per press,
// ignoring key repeats.
func (s *KeyboardStyle) Update(gtx C) {
	k := s.Keyboard
	for {
		ev, ok := gtx.Event(k.filters...)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok {
			continue
		}
		switch e.State {
		case key.Press:
			if k.held[e.Name] {
				continue
			}
			k.held[e.Name] = true
			if note, ok := k.bindings[e.Name]; ok {
				s.play(gtx, note)
			}
		case key.Release:
			delete(k.held, e.Name)
		}
	}
	for _, areas := range [][]keyArea{k.white, k.black} {
		for i := range areas {
			for {
				ev, ok := gtx.Event(pointer.Filter{Target: &areas[i], Kinds: pointer.Press})
				if !ok {
					break
				}
				if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
					s.play(gtx, areas[i].key)
				}
			}
		}
	}
}

func (s *KeyboardStyle) play(gtx C, note toneboard.Key) {
	s.Keyboard.lit[note] = gtx.Now.Add(keyLitDuration)
	gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(keyLitDuration)})
	if s.Play != nil {
		s.Play(note.ID())
	}
}

// Layout fills the constraints with the white keys side by side and draws
// the black keys over the boundaries between them.
func (s KeyboardStyle) Layout(gtx C) D {
	s.Update(gtx)
	k := s.Keyboard
	size := gtx.Constraints.Max
	if len(k.white) == 0 {
		return D{Size: size}
	}
	whiteWidth := size.X / len(k.white)
	blackWidth := int(float32(whiteWidth) * s.Style.BlackWidth)
	blackHeight := int(float32(size.Y) * s.Style.BlackHeight)
	border := gtx.Dp(1)
	b := 0
	for i := range k.white {
		x := i * whiteWidth
		rect := image.Rect(x+border, 0, x+whiteWidth-border, size.Y)
		s.layoutKey(gtx, &k.white[i], rect, false)
	}
	for i, g := range k.groups {
		if !g.HasBlack {
			continue
		}
		x := (i+1)*whiteWidth - blackWidth/2
		rect := image.Rect(x, 0, x+blackWidth, blackHeight)
		s.layoutKey(gtx, &k.black[b], rect, true)
		b++
	}
	return D{Size: size}
}

func (s KeyboardStyle) layoutKey(gtx C, area *keyArea, rect image.Rectangle, isBlack bool) {
	color, textColor := s.Style.White, s.Style.WhiteText
	if isBlack {
		color, textColor = s.Style.Black, s.Style.BlackText
	}
	if until, ok := s.Keyboard.lit[area.key]; ok {
		if gtx.Now.Before(until) {
			color = s.Style.Pressed
		} else {
			delete(s.Keyboard.lit, area.key)
		}
	}
	radius := gtx.Dp(3)
	paint.FillShape(gtx.Ops, s.Style.Border, clip.Rect(rect).Op())
	inner := rect.Inset(gtx.Dp(1))
	stack := clip.RRect{Rect: inner, SE: radius, SW: radius}.Push(gtx.Ops)
	paint.Fill(gtx.Ops, color)
	event.Op(gtx.Ops, area)
	stack.Pop()

	macro := op.Record(gtx.Ops)
	labelGtx := gtx
	labelGtx.Constraints.Min = image.Point{}
	labelGtx.Constraints.Max = inner.Size()
	paint.ColorOp{Color: textColor}.Add(gtx.Ops)
	dims := widget.Label{MaxLines: 1}.Layout(labelGtx, s.Shaper, font.Font{}, s.Style.TextSize, area.key.Label(), op.CallOp{})
	call := macro.Stop()
	offset := image.Pt(inner.Min.X+(inner.Dx()-dims.Size.X)/2, inner.Max.Y-dims.Size.Y-gtx.Dp(6))
	defer op.Offset(offset).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
