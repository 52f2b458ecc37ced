package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"UltraNova/internal/catalog"
)

var themes = []catalog.Theme{catalog.ThemeMarket, catalog.ThemeProduct, catalog.ThemeTeam}

// DecisionsPage is the decision memory. selected is 0 when nothing is open.
func DecisionsPage(decisions []catalog.Decision, selected int) g.Node {
	return Layout(PageConfig{Title: "Decision Memory - UltraNova", Active: "/decisions"},
		H1(g.Text("Decision Memory")),
		P(Class("muted"), g.Text("Every call the council has made, grouped by theme.")),
		Div(Class("legend"), g.Map(themes, func(t catalog.Theme) g.Node {
			return Span(Style("margin-right:16px;color:"+t.Color()), g.Text("● "+t.Label()))
		})),
		Div(Class("grid"), g.Map(decisions, func(d catalog.Decision) g.Node {
			return decisionCard(d, d.ID == selected)
		})),
	)
}

func decisionCard(d catalog.Decision, open bool) g.Node {
	id := strconv.Itoa(d.ID)
	href := "/decisions?decision=" + id
	if open {
		href = "/decisions"
	}
	return Article(
		Class("card"),
		ID("decision-"+id),
		Style("border-color:"+d.Theme.Color()),
		A(Href(href), Style("text-decoration:none"),
			Span(Class("muted"), g.Text(d.Date+" · "+d.Theme.Label())),
			H3(g.Text(d.Title)),
		),
		P(g.Text(d.Outcome)),
		ConfidenceBar(ConfidenceBarProps{Value: float64(d.Confidence), Label: "Confidence", Color: d.Theme.Color(), Size: BarSmall}),
		g.If(open, Div(
			Class("decision-detail"),
			ConfidenceBar(ConfidenceBarProps{Value: d.Impact * 100, Label: "Impact", Color: d.Theme.Color(), Size: BarSmall}),
			Ul(g.Map(catalog.AgentTypes, func(t catalog.AgentType) g.Node {
				return Li(AgentBadge(t, ""), g.Text(": "+d.Agents[t]))
			})),
		)),
	)
}
