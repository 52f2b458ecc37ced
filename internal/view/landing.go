package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"UltraNova/internal/waitlist"
)

type feature struct {
	Icon   string
	Title  string
	Points []string
}

var features = []feature{
	{"🧠", "Think", []string{"Idea validation", "Market analysis", "Competitor breakdown"}},
	{"🛠️", "Build", []string{"MVP structure", "Landing pages", "Tech architecture"}},
	{"📈", "Grow", []string{"Ad campaigns", "Content generation", "Funnel optimization"}},
	{"🤖", "Automate", []string{"AI sales agents", "Customer support", "Operations"}},
}

type step struct {
	N     string
	Title string
	Desc  string
}

var steps = []step{
	{"1", "Input Your Idea", "Tell UltraNova what you want to build"},
	{"2", "Strategy Agent", "AI analyzes and structures your idea"},
	{"3", "Team Logic", "Marketing, Product, Sales, Tech, Ops evaluate"},
	{"4", "Hard Truth Engine", "Get real feedback + confidence score"},
}

// WaitlistForm carries the submitted values back into the form on re-render.
type WaitlistForm struct {
	Values  waitlist.Signup
	Error   string
	Success bool
}

func LandingPage(form WaitlistForm) g.Node {
	return Layout(PageConfig{Active: "/"},
		Section(
			Class("card"),
			Style("text-align:center;padding:64px 24px"),
			H1(g.Text("Meet Ultranova, "), Span(Style("color:#6C3BFF"), g.Text("Your AI Co-Founder"))),
			P(Class("muted"), g.Text("Think. Build. Grow. Turn ideas into scalable startups.")),
			P(
				A(Href("#waitlist"), g.Text("🚀 Get Early Access")),
				g.Text(" · "),
				A(Href("#how-it-works"), g.Text("🎥 See How It Works")),
			),
		),
		Section(
			Style("text-align:center"),
			H2(g.Text("This isn't another tool."), Br(), g.Text("This is your second brain for business.")),
			P(Class("muted"), g.Text("UltraNova is an AI Founder Operating System that helps founders validate ideas, make decisions, plan roadmap, align teams, and avoid mistakes.")),
		),
		Section(
			H2(g.Text("What UltraNova Does")),
			Div(Class("grid"), g.Map(features, func(f feature) g.Node {
				return Div(Class("card"),
					Div(Style("font-size:40px"), g.Text(f.Icon)),
					H3(g.Text(f.Title)),
					Ul(Class("muted"), g.Map(f.Points, func(p string) g.Node { return Li(g.Text(p)) })),
				)
			})),
		),
		Section(
			ID("how-it-works"),
			H2(g.Text("How UltraNova Works")),
			Div(Class("grid"), g.Map(steps, func(s step) g.Node {
				return Div(Class("card"),
					Strong(g.Text(s.N+". "+s.Title)),
					P(Class("muted"), g.Text(s.Desc)),
				)
			})),
		),
		Section(
			ID("waitlist"),
			Class("card"),
			H2(g.Text("Get Early Access")),
			P(Class("muted"), g.Text("Join the waitlist for UltraNova Founder OS")),
			waitlistBody(form, "/waitlist"),
		),
	)
}

func WaitlistPage(form WaitlistForm) g.Node {
	return Layout(PageConfig{Title: "Join the Waitlist - UltraNova", Active: "/waitlist"},
		Section(
			Class("card"),
			Style("max-width:560px;margin:0 auto"),
			H1(g.Text("Join the Waitlist")),
			waitlistBody(form, "/waitlist"),
			P(A(Href("/"), g.Text("Return to Home"))),
		),
	)
}

func waitlistBody(form WaitlistForm, action string) g.Node {
	if form.Success {
		return Div(
			ID("waitlist-success"),
			P(Style("font-size:22px"), g.Text("🎉 You're on the list!")),
			P(Class("muted"), g.Text("Check your email for confirmation.")),
		)
	}
	v := form.Values
	return Form(
		Method("post"),
		Action(action),
		g.If(form.Error != "", P(Class("error"), ID("waitlist-error"), g.Text(form.Error))),
		Label(For("name"), g.Text("Name")),
		Input(ID("name"), Name("name"), Type("text"), Placeholder("Full Name"), Value(v.Name), Required()),
		Label(For("email"), g.Text("Email")),
		Input(ID("email"), Name("email"), Type("email"), Placeholder("Email Address"), Value(v.Email), Required()),
		Label(For("role"), g.Text("Role")),
		Select(ID("role"), Name("role"), Required(),
			Option(Value(""), g.Text("Select your role")),
			options(waitlist.Roles, v.Role),
		),
		Label(For("idea_description"), g.Text("What do you want to build?")),
		Textarea(ID("idea_description"), Name("idea_description"), g.Attr("rows", "4"),
			Placeholder("Describe your startup idea..."), Required(), g.Text(v.IdeaDescription)),
		Label(For("stage"), g.Text("Stage")),
		Select(ID("stage"), Name("stage"),
			Option(Value(""), g.Text("Current stage (optional)")),
			options(waitlist.Stages, v.Stage),
		),
		Button(Type("submit"), g.Text("Join Waitlist")),
	)
}

func options(opts []waitlist.Option, selected string) g.Node {
	return g.Map(opts, func(o waitlist.Option) g.Node {
		return Option(Value(o.Value), g.If(o.Value == selected, Selected()), g.Text(o.Label))
	})
}
