package gioui

import (
	"fmt"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/board"
	"github.com/vsariola/toneboard/options"
)

type (
	// OptionsPanel shows one column per control group: radio buttons for
	// the oscillator family and shape, number inputs for the envelope.
	OptionsPanel struct {
		groups []options.Group
		enums  []widget.Enum
		inputs [][]*NumberInput
		model  *board.Model
	}
)

func NewOptionsPanel(model *board.Model) *OptionsPanel {
	p := &OptionsPanel{
		groups: options.Generate(options.Specs, model.Settings()),
		model:  model,
	}
	p.enums = make([]widget.Enum, len(p.groups))
	p.inputs = make([][]*NumberInput, len(p.groups))
	for i, g := range p.groups {
		if c, ok := g.Checked(); ok {
			p.enums[i].Value = c.Value
		}
		if g.Kind != options.Numeric {
			continue
		}
		for _, c := range g.Controls {
			field, err := toneboard.ParseEnvelopeField(c.Field)
			if err != nil {
				panic(fmt.Sprintf("no envelope field %q", c.Field))
			}
			p.inputs[i] = append(p.inputs[i], NewNumberInput(model.Envelope(field)))
		}
	}
	return p
}

// Update dispatches the radio buttons changed since the last frame to the
// model. Errors are reported as alerts.
func (p *OptionsPanel) Update(gtx C) {
	for i, g := range p.groups {
		if g.Kind != options.Choice {
			continue
		}
		if p.enums[i].Update(gtx) {
			p.model.Report(p.model.Dispatch(g.Category, p.enums[i].Value, ""))
		}
	}
}

func (p *OptionsPanel) Layout(gtx C, th *Theme) D {
	p.Update(gtx)
	children := make([]layout.FlexChild, 0, len(p.groups))
	for i := range p.groups {
		i := i
		children = append(children, layout.Rigid(func(gtx C) D {
			return th.OptionsInset.Layout(gtx, func(gtx C) D {
				return p.layoutGroup(gtx, th, i)
			})
		}))
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

func (p *OptionsPanel) layoutGroup(gtx C, th *Theme, i int) D {
	g := p.groups[i]
	children := []layout.FlexChild{
		layout.Rigid(Label(th.OptionsTitle, g.Title).Layout),
	}
	for j, c := range g.Controls {
		j, c := j, c
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
				if g.Kind == options.Numeric {
					return p.layoutNumber(gtx, th, c, p.inputs[i][j])
				}
				return p.layoutChoice(gtx, th, c, &p.enums[i])
			})
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (p *OptionsPanel) layoutChoice(gtx C, th *Theme, c options.Control, enum *widget.Enum) D {
	radio := material.RadioButton(&th.Material, enum, c.Value, c.Label)
	if c.Glyph == "" {
		return radio.Layout(gtx)
	}
	shape, err := toneboard.ParseShape(c.Value)
	if err != nil {
		return radio.Layout(gtx)
	}
	radio.Label = ""
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(radio.Layout),
		layout.Rigid(Glyph(th, shape).Layout),
	)
}

func (p *OptionsPanel) layoutNumber(gtx C, th *Theme, c options.Control, input *NumberInput) D {
	label := th.OptionsTitle
	label.Color = th.Material.Palette.Fg
	label.FontSize = th.Material.TextSize
	label.Font.Weight = font.Normal
	tooltip := fmt.Sprintf("%v in %v steps, at least %v", c.Label, options.FormatNumber(c.Step), options.FormatNumber(c.Min))
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(64)
			return Label(label, c.Label).Layout(gtx)
		}),
		layout.Rigid(NumericUpDown(th, input, tooltip, p.model.Report).Layout),
	)
}
