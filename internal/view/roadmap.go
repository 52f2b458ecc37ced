package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"UltraNova/internal/catalog"
)

func RoadmapPage(rm catalog.Roadmap, active catalog.Milestone) g.Node {
	return Layout(PageConfig{Title: "Roadmap - UltraNova", Active: "/roadmap"},
		H1(g.Text("Timeline Nexus")),
		P(Class("muted"), g.Text("Where the company is headed, and who is worried about it.")),
		Ol(Class("timeline"), Style("display:flex;gap:16px;list-style:none;padding:0"),
			g.Map(rm.Milestones, func(m catalog.Milestone) g.Node {
				return Li(
					ID("milestone-"+m.ID),
					g.If(m.ID == active.ID, Class("active")),
					A(Href("/roadmap?milestone="+m.ID), Style("color:"+m.Color),
						Strong(g.Text(m.Label)), Br(), Span(Class("muted"), g.Text(m.Time)),
					),
				)
			}),
		),
		Section(
			Class("card"),
			ID("milestone-detail"),
			Style("border-color:"+active.Color),
			H2(g.Text(active.Label+" · "+active.Time)),
			Ul(g.Map(active.Tasks, func(t string) g.Node { return Li(g.Text(t)) })),
			H3(g.Text("Agent sign-off")),
			Ul(g.Map(catalog.AgentTypes, func(t catalog.AgentType) g.Node {
				return Li(AgentBadge(t, ""), g.Text(" "+statusMark(active.Agents[t])))
			})),
		),
		Section(
			Class("card"),
			H3(g.Text("Team Alignment")),
			Ul(g.Map(rm.Alignment, func(a catalog.Alignment) g.Node {
				return Li(Span(Style("color:"+a.Color), g.Text(a.Name)), g.Text(" "+statusMark(a.Status)))
			})),
		),
	)
}

func statusMark(s string) string {
	if s == "ok" {
		return "✓"
	}
	return "⚠ " + s
}
