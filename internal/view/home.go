package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Founder struct {
	Name    string
	Email   string
	Picture string
}

// HomePage greets a signed-in founder and links the console tools.
func HomePage(f Founder) g.Node {
	return Layout(PageConfig{Title: "Founder Home - UltraNova", Active: "/home"},
		Section(Class("card"),
			g.If(f.Picture != "", Img(Src(f.Picture), Alt(f.Name), Style("width:56px;border-radius:50%"))),
			H1(g.Text("Welcome back, "+f.Name)),
			P(Class("muted"), g.Text(f.Email)),
			Form(Method("post"), Action("/auth/token"),
				Button(Type("submit"), g.Text("Issue API token")),
			),
			P(A(Href("/logout"), g.Text("Sign out"))),
		),
		Div(Class("grid"), g.Map(navLinks[1:5], func(l navLink) g.Node {
			return A(Href(l.Href), Class("card"), Style("display:block;text-decoration:none"),
				H3(g.Text(l.Label)), P(Class("muted"), g.Text(l.Desc)),
			)
		})),
	)
}

// LoginPage is shown to visitors without a Google session.
func LoginPage() g.Node {
	return Layout(PageConfig{Title: "Sign in - UltraNova"},
		Section(Class("card"), Style("text-align:center"),
			H1(g.Text("Founder Console")),
			P(Class("muted"), g.Text("Sign in to run the council on your own idea.")),
			A(Href("/auth/google"), g.Text("Sign in with Google")),
		),
	)
}

func NotFoundPage() g.Node {
	return Layout(PageConfig{Title: "404 - UltraNova"},
		Section(Style("text-align:center;padding:96px 16px"),
			H1(Style("font-size:96px;margin:0;color:#6C3BFF"), g.Text("404")),
			P(Class("muted"), g.Text("This sector of space is uncharted.")),
			A(Href("/"), g.Text("Return to Base")),
		),
	)
}
