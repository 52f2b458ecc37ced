package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"UltraNova/internal/catalog"
)

// ConsolePage is the decision war room. selected is -1 when no option is
// chosen.
func ConsolePage(c catalog.Console, selected int) g.Node {
	recommended := catalog.RecommendedOption(c.Options)
	return Layout(PageConfig{Title: "Console - UltraNova", Active: "/console"},
		H1(g.Text("Decision War Room")),
		Div(Class("grid"),
			Section(Class("card"),
				H3(g.Text("Agent Council")),
				g.Map(c.Agents, func(a catalog.ConsoleAgent) g.Node {
					return Div(
						Class("console-agent"),
						AgentBadge(a.Type, a.Status),
						P(Class("muted"), g.Text(a.Message)),
					)
				}),
			),
			Section(Class("card"),
				H3(g.Text("Decision Tree"), Span(Style("color:#00FF9D;margin-left:8px"), g.Text("● Live"))),
				Div(Class("grid"), g.Map(indexed(c.Options), func(o indexedOption) g.Node {
					return optionCard(o, o.Index == selected, o.Index == recommended)
				})),
			),
		),
		Form(
			Method("post"),
			Action("/chat"),
			Class("card"),
			Label(For("message"), g.Text("Ask the council")),
			Input(ID("message"), Name("message"), Type("text"), Placeholder("Ask anything..."), Required()),
			Button(Type("submit"), g.Text("Think")),
		),
	)
}

type indexedOption struct {
	catalog.DecisionOption
	Index int
}

func indexed(opts []catalog.DecisionOption) []indexedOption {
	out := make([]indexedOption, len(opts))
	for i, o := range opts {
		out[i] = indexedOption{DecisionOption: o, Index: i}
	}
	return out
}

func optionCard(o indexedOption, selected, recommended bool) g.Node {
	class := "card"
	if selected {
		class = "card selected"
	}
	return A(
		Href("/console?option="+strconv.Itoa(o.Index)),
		Class(class),
		Style("display:block;text-decoration:none;border-color:"+o.Color),
		Strong(g.Text(o.Label)),
		g.If(recommended, Span(Style("color:#00FF9D;margin-left:8px"), g.Text("Recommended"))),
		ConfidenceBar(ConfidenceBarProps{Value: float64(o.Risk), Label: "Risk", Color: RiskColor(o.Risk), Size: BarSmall}),
		ConfidenceBar(ConfidenceBarProps{Value: float64(o.Confidence), Label: "Confidence", Color: o.Color, Size: BarSmall}),
	)
}

// RiskColor grades a risk percentage red, orange or green.
func RiskColor(risk int) string {
	switch {
	case risk > 35:
		return "#FF3B3B"
	case risk > 20:
		return "#FF6B3B"
	}
	return "#00FF9D"
}
