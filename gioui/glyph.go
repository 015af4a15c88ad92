package gioui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/engine"
)

const glyphSegments = 48

// ShapeGlyph draws one cycle of a waveform shape as a line.
type ShapeGlyph struct {
	Shape  toneboard.Shape
	Color  color.NRGBA
	Width  unit.Dp
	Height unit.Dp
	Stroke unit.Dp
}

func Glyph(th *Theme, shape toneboard.Shape) ShapeGlyph {
	return ShapeGlyph{
		Shape:  shape,
		Color:  th.Material.Palette.Fg,
		Width:  unit.Dp(28),
		Height: unit.Dp(16),
		Stroke: unit.Dp(1.5),
	}
}

func (g ShapeGlyph) Layout(gtx C) D {
	size := image.Pt(gtx.Dp(g.Width), gtx.Dp(g.Height))
	stroke := float32(gtx.Dp(g.Stroke))
	w, h := float32(size.X), float32(size.Y)-stroke
	var path clip.Path
	path.Begin(gtx.Ops)
	for i := 0; i <= glyphSegments; i++ {
		p := float64(i) / glyphSegments
		v := engine.Waveform(g.Shape, p-float64(int(p)))
		pt := f32.Pt(w*float32(p), stroke/2+h*(1-float32(v))/2)
		if i == 0 {
			path.MoveTo(pt)
		} else {
			path.LineTo(pt)
		}
	}
	paint.FillShape(gtx.Ops, g.Color, clip.Stroke{Path: path.End(), Width: stroke}.Op())
	return D{Size: size}
}
