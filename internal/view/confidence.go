package view

import (
	"fmt"
	"math"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const defaultBarColor = "#6C3BFF"

// ClampPercent bounds v to [0,100]. NaN maps to 0.
func ClampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

type BarSize int

const (
	BarMedium BarSize = iota
	BarSmall
)

type ConfidenceBarProps struct {
	Value          float64
	Label          string
	Color          string
	HidePercentage bool
	Size           BarSize
}

func ConfidenceBar(p ConfidenceBarProps) g.Node {
	v := ClampPercent(p.Value)
	color := p.Color
	if color == "" {
		color = defaultBarColor
	}
	height := 6
	if p.Size == BarSmall {
		height = 4
	}

	return Div(
		Class("confidence"),
		g.If(p.Label != "" || !p.HidePercentage,
			Div(
				Style("display:flex;justify-content:space-between;margin-bottom:8px"),
				g.If(p.Label != "", Span(Class("muted"), g.Text(p.Label))),
				g.If(!p.HidePercentage, Span(
					Style("font-weight:600;color:"+color),
					g.Text(formatPercent(v)),
				)),
			),
		),
		Div(
			Class("bar"),
			Style(fmt.Sprintf("height:%dpx;border-radius:%dpx", height, height/2)),
			Div(
				Class("bar-fill"),
				Data("value", formatNumber(v)),
				Style(fmt.Sprintf("width:%s%%;background:%s", formatNumber(v), color)),
			),
		),
	)
}

func formatPercent(v float64) string {
	return formatNumber(v) + "%"
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}
