package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"UltraNova/internal/catalog"
)

// TeamPage lists the agent council. The expanded profile shows its
// reasoning and requests.
func TeamPage(profiles []catalog.AgentProfile, expanded catalog.AgentType) g.Node {
	return Layout(PageConfig{Title: "Agent Council - UltraNova", Active: "/team"},
		H1(g.Text("Agent Council")),
		P(Class("muted"), g.Text("Five specialists. One decision. Click an agent to see its reasoning.")),
		Div(Class("grid"), g.Map(profiles, func(p catalog.AgentProfile) g.Node {
			return agentCard(p, p.Type == expanded)
		})),
	)
}

func agentCard(p catalog.AgentProfile, open bool) g.Node {
	href := "/team?agent=" + string(p.Type)
	if open {
		href = "/team"
	}
	return Article(
		Class("card"),
		ID("agent-"+string(p.Type)),
		Style("border-color:"+p.Color),
		A(Href(href), Style("text-decoration:none"),
			H3(Style("color:"+p.Color), g.Text(p.Type.Label())),
			P(g.Text(p.Stance)),
		),
		ConfidenceBar(ConfidenceBarProps{Value: float64(p.Confidence), Label: "Confidence", Color: p.Color}),
		g.If(open, Div(
			Class("agent-detail"),
			H3(g.Text("Reasoning")),
			Ul(g.Map(p.Reasoning, func(s string) g.Node { return Li(g.Text(s)) })),
			H3(g.Text("Requests")),
			Ol(g.Map(p.Requests, func(s string) g.Node { return Li(g.Text(s)) })),
		)),
	)
}

// AgentBadge is the compact avatar used on the console and decision cards.
func AgentBadge(t catalog.AgentType, status string) g.Node {
	return Span(
		Class("agent-badge"),
		Data("agent", string(t)),
		Style(fmt.Sprintf("color:%s", t.Color())),
		g.Text(t.Label()),
		g.If(status != "", Span(Class("muted"), g.Text(" · "+statusText(status)))),
	)
}

func statusText(status string) string {
	switch status {
	case "active":
		return "Active"
	case "waiting":
		return "Waiting..."
	case "calculating":
		return "Calculating..."
	case "vetoing":
		return "VETO"
	case "idle":
		return "Idle"
	}
	return status
}
