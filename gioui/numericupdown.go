package gioui

import (
	"image"
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/font"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/x/component"

	"github.com/vsariola/toneboard/board"
	"github.com/vsariola/toneboard/options"
)

// NumberInput edits a board.Float: the buttons step the value by one step,
// dragging steps it by one step per UnitsPerStep.
type NumberInput struct {
	Float          board.Float
	dragStartValue float64
	dragStartXY    float32
	clickDecrease  gesture.Click
	clickIncrease  gesture.Click
	tipArea        component.TipArea
}

type NumericUpDownStyle struct {
	NumberInput     *NumberInput
	Color           color.NRGBA
	Font            font.Font
	TextSize        unit.Sp
	IconColor       color.NRGBA
	BackgroundColor color.NRGBA
	CornerRadius    unit.Dp
	ButtonWidth     unit.Dp
	UnitsPerStep    unit.Dp
	Tooltip         component.Tooltip
	Width           unit.Dp
	Height          unit.Dp
	// OnError receives the errors of setting the value.
	OnError func(error)
	shaper  *text.Shaper
}

func NewNumberInput(v board.Float) *NumberInput {
	return &NumberInput{Float: v}
}

func NumericUpDown(th *Theme, number *NumberInput, tooltip string, onError func(error)) NumericUpDownStyle {
	return NumericUpDownStyle{
		NumberInput:     number,
		Color:           th.NumericUpDown.Text,
		IconColor:       th.NumericUpDown.Icon,
		BackgroundColor: th.NumericUpDown.Bg,
		CornerRadius:    unit.Dp(4),
		ButtonWidth:     unit.Dp(16),
		UnitsPerStep:    unit.Dp(8),
		TextSize:        th.Material.TextSize,
		Tooltip:         Tooltip(th, tooltip),
		Width:           unit.Dp(80),
		Height:          unit.Dp(22),
		OnError:         onError,
		shaper:          th.Material.Shaper,
	}
}

func (s *NumericUpDownStyle) Update(gtx C) {
	// handle dragging
	pxPerStep := float32(gtx.Dp(s.UnitsPerStep))
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s.NumberInput,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			switch e.Kind {
			case pointer.Press:
				s.NumberInput.dragStartValue = s.NumberInput.Float.Value()
				s.NumberInput.dragStartXY = e.Position.X - e.Position.Y
			case pointer.Drag:
				deltaCoord := e.Position.X - e.Position.Y - s.NumberInput.dragStartXY
				steps := int(deltaCoord / pxPerStep)
				step := s.NumberInput.Float.Range().Step
				s.report(s.NumberInput.Float.Set(s.NumberInput.dragStartValue + float64(steps)*step))
			}
		}
	}
	for ev, ok := s.NumberInput.clickDecrease.Update(gtx.Source); ok; ev, ok = s.NumberInput.clickDecrease.Update(gtx.Source) {
		if ev.Kind == gesture.KindClick {
			s.report(s.NumberInput.Float.Add(-1))
		}
	}
	for ev, ok := s.NumberInput.clickIncrease.Update(gtx.Source); ok; ev, ok = s.NumberInput.clickIncrease.Update(gtx.Source) {
		if ev.Kind == gesture.KindClick {
			s.report(s.NumberInput.Float.Add(1))
		}
	}
}

func (s *NumericUpDownStyle) report(err error) {
	if err != nil && s.OnError != nil {
		s.OnError(err)
	}
}

func (s NumericUpDownStyle) Layout(gtx C) D {
	if s.Tooltip.Text.Text != "" {
		return s.NumberInput.tipArea.Layout(gtx, s.Tooltip, s.actualLayout)
	}
	return s.actualLayout(gtx)
}

func (s *NumericUpDownStyle) actualLayout(gtx C) D {
	s.Update(gtx)
	gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(s.Width), gtx.Dp(s.Height)))
	width := gtx.Dp(s.ButtonWidth)
	height := gtx.Dp(s.Height)
	button := func(click *gesture.Click, icon []byte) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			gtx.Constraints = layout.Exact(image.Pt(width, height))
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
					click.Add(gtx.Ops)
					return D{Size: gtx.Constraints.Min}
				},
				func(gtx C) D { return widgetForIcon(icon).Layout(gtx, s.IconColor) },
			)
		})
	}
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(s.CornerRadius)).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, s.BackgroundColor)
			event.Op(gtx.Ops, s.NumberInput) // register drag inputs, if not hitting the clicks
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				button(&s.NumberInput.clickDecrease, icons.ContentRemove),
				layout.Flexed(1, func(gtx C) D {
					paint.ColorOp{Color: s.Color}.Add(gtx.Ops)
					str := options.FormatNumber(s.NumberInput.Float.Value())
					return widget.Label{Alignment: text.Middle}.Layout(gtx, s.shaper, s.Font, s.TextSize, str, op.CallOp{})
				}),
				button(&s.NumberInput.clickIncrease, icons.ContentAdd),
			)
		},
	)
}

func Tooltip(th *Theme, tip string) component.Tooltip {
	tooltip := component.PlatformTooltip(&th.Material, tip)
	tooltip.Bg = th.Tooltip.Bg
	tooltip.Text.Color = th.Tooltip.Color
	return tooltip
}
