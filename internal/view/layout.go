// Package view renders the UltraNova pages with gomponents.
package view

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Active      string
}

type navLink struct {
	Label string
	Href  string
	Desc  string
}

var navLinks = []navLink{
	{"Home", "/", "The Horizon"},
	{"Console", "/console", "Decision war room"},
	{"Roadmap", "/roadmap", "Timeline nexus"},
	{"Team", "/team", "Agent council"},
	{"Decisions", "/decisions", "Memory palace"},
	{"Waitlist", "/waitlist", "Neural signature"},
}

const baseCSS = `body{margin:0;background:#0A0A0F;color:#F0F0FF;font-family:Inter,system-ui,sans-serif}
a{color:inherit}
.nav{display:flex;gap:16px;padding:16px 24px;border-bottom:1px solid #1c1c2b}
.nav a{text-decoration:none;color:#8888AA}
.nav a.active{color:#F0F0FF;font-weight:600}
.wrap{max-width:1100px;margin:0 auto;padding:24px 16px}
.card{background:#12121c;border:1px solid #1c1c2b;border-radius:14px;padding:20px;margin-bottom:16px}
.bar{width:100%;background:#1c1c2b;overflow:hidden}
.bar-fill{height:100%}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:16px}
.muted{color:#8888AA}
.error{color:#FF3B3B}
label{display:block;margin-top:12px}
input,select,textarea{width:100%;padding:10px;border-radius:10px;border:1px solid #2a2a3d;background:#0f0f17;color:inherit}
button{margin-top:16px;padding:12px 24px;border-radius:12px;border:0;background:#6C3BFF;color:#fff;font-weight:600}`

func Layout(cfg PageConfig, content ...g.Node) g.Node {
	if cfg.Title == "" {
		cfg.Title = "UltraNova - Your AI Co-Founder"
	}
	if cfg.Description == "" {
		cfg.Description = "UltraNova is an AI Founder Operating System that helps founders validate ideas, make decisions, plan roadmap, align teams, and avoid mistakes."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(cfg.Title)),
				Meta(Name("description"), Content(cfg.Description)),
				StyleEl(g.Raw(baseCSS)),
			),
			Body(
				topNav(cfg.Active),
				Main(Class("wrap"), g.Group(content)),
				Footer(Class("wrap muted"), g.Text("© 2026 UltraNova. Building the future with AI.")),
			),
		),
	})
}

func topNav(active string) g.Node {
	return Nav(
		Class("nav"),
		A(Href("/"), Strong(g.Text("UltraNova"))),
		g.Map(navLinks, func(l navLink) g.Node {
			return A(
				Href(l.Href),
				Title(l.Desc),
				g.If(l.Href == active, Class("active")),
				g.Text(l.Label),
			)
		}),
	)
}

// Page adapts a gomponents tree to a templ component.
func Page(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Render writes n as a full HTML response.
func Render(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
	templ.Handler(Page(n), templ.WithStatus(status)).ServeHTTP(w, r)
}
