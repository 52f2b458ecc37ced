package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const chatGreeting = "System online. How can I help you build today?"

var chatSuggestions = []string{
	"What is an AI Founder OS?",
	"How do the 5 agents work?",
	"Is this for solo founders?",
}

// ChatTurn is one exchange. ReplyHTML must already be sanitized.
type ChatTurn struct {
	Question  string
	ReplyHTML string
}

func ChatPage(turns []ChatTurn) g.Node {
	return Layout(PageConfig{Title: "UltraNova Guide"},
		Section(
			Class("card"),
			Style("max-width:640px;margin:0 auto"),
			H2(g.Text("UltraNova Guide")),
			P(Class("muted"), g.Text("Always online")),
			Div(
				ID("transcript"),
				P(Class("bot"), g.Text(chatGreeting)),
				g.Map(turns, func(t ChatTurn) g.Node {
					return g.Group([]g.Node{
						P(Class("user"), Strong(g.Text("You: ")), g.Text(t.Question)),
						Div(Class("bot"), g.Raw(t.ReplyHTML)),
					})
				}),
			),
			g.If(len(turns) == 0, Div(
				Class("suggestions"),
				g.Map(chatSuggestions, func(s string) g.Node {
					return Form(Method("post"), Action("/chat"), Style("display:inline"),
						Input(Type("hidden"), Name("message"), Value(s)),
						Button(Type("submit"), g.Text(s)),
					)
				}),
			)),
			Form(
				Method("post"),
				Action("/chat"),
				Input(Name("message"), Type("text"), Placeholder("Ask anything..."), Required()),
				Button(Type("submit"), g.Text("Send")),
			),
		),
	)
}
