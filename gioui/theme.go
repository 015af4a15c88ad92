package gioui

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type (
	Theme struct {
		Material      material.Theme
		Alert         AlertStyles
		Tooltip       TooltipStyle
		Keys          KeyStyle
		NumericUpDown NumericUpDownColors
		OptionsTitle  LabelStyle
		OptionsInset  layout.Inset
	}

	TooltipStyle struct {
		Bg    color.NRGBA
		Color color.NRGBA
	}

	KeyStyle struct {
		White       color.NRGBA
		Black       color.NRGBA
		Pressed     color.NRGBA
		Border      color.NRGBA
		WhiteText   color.NRGBA
		BlackText   color.NRGBA
		BlackWidth  float32 // of the width of a white key
		BlackHeight float32 // of the height of a white key
		TextSize    unit.Sp
	}

	NumericUpDownColors struct {
		Text color.NRGBA
		Icon color.NRGBA
		Bg   color.NRGBA
	}
)

var fontCollection []text.FontFace = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var popupSurfaceColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var numberInputBgColor = color.NRGBA{R: 255, G: 255, B: 255, A: 3}

var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}

var labelDefaultFont = fontCollection[6].Font

func NewTheme() *Theme {
	th := &Theme{}
	th.Material = *material.NewTheme()
	th.Material.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	th.Material.Palette.Bg = backgroundColor
	th.Material.Palette.Fg = highEmphasisTextColor
	th.Material.Palette.ContrastBg = primaryColor
	th.Material.Palette.ContrastFg = black
	th.Material.TextSize = unit.Sp(14)

	th.Alert = AlertStyles{
		Info:    AlertStyle{Bg: popupSurfaceColor, Text: LabelStyle{Color: highEmphasisTextColor, ShadeColor: black}},
		Warning: AlertStyle{Bg: warningColor, Text: LabelStyle{Color: black, ShadeColor: transparent}},
		Error:   AlertStyle{Bg: errorColor, Text: LabelStyle{Color: black, ShadeColor: transparent}},
		Margin:  layout.UniformInset(unit.Dp(6)),
		Inset:   layout.UniformInset(unit.Dp(6)),
	}
	th.Tooltip = TooltipStyle{Bg: popupSurfaceColor, Color: highEmphasisTextColor}
	th.Keys = KeyStyle{
		White:       color.NRGBA{R: 236, G: 236, B: 236, A: 255},
		Black:       color.NRGBA{R: 30, G: 30, B: 32, A: 255},
		Pressed:     secondaryColor,
		Border:      color.NRGBA{R: 60, G: 60, B: 64, A: 255},
		WhiteText:   color.NRGBA{R: 80, G: 80, B: 80, A: 255},
		BlackText:   mediumEmphasisTextColor,
		BlackWidth:  .6,
		BlackHeight: .6,
		TextSize:    unit.Sp(12),
	}
	th.NumericUpDown = NumericUpDownColors{Text: white, Icon: highEmphasisTextColor, Bg: numberInputBgColor}
	th.OptionsTitle = LabelStyle{
		Color:      primaryColor,
		ShadeColor: black,
		Font:       font.Font{Weight: font.Bold},
		FontSize:   unit.Sp(16),
		Shaper:     th.Material.Shaper,
	}
	th.OptionsInset = layout.UniformInset(unit.Dp(8))
	for _, s := range []*AlertStyle{&th.Alert.Info, &th.Alert.Warning, &th.Alert.Error} {
		s.Text.Font = labelDefaultFont
		s.Text.FontSize = unit.Sp(14)
		s.Text.Shaper = th.Material.Shaper
	}
	return th
}
