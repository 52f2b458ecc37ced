package catalog

// Theme groups decisions on the constellation view.
type Theme string

const (
	ThemeMarket  Theme = "market"
	ThemeProduct Theme = "product"
	ThemeTeam    Theme = "team"
)

func (t Theme) Label() string {
	switch t {
	case ThemeMarket:
		return "Market"
	case ThemeProduct:
		return "Product"
	case ThemeTeam:
		return "Team"
	}
	return string(t)
}

func (t Theme) Color() string {
	switch t {
	case ThemeMarket:
		return "#FF6B3B"
	case ThemeProduct:
		return "#00A3FF"
	case ThemeTeam:
		return "#00FF9D"
	}
	return "#6C3BFF"
}

type Decision struct {
	ID         int                  `json:"id"`
	Title      string               `json:"title"`
	Theme      Theme                `json:"theme"`
	Impact     float64              `json:"impact"`
	Date       string               `json:"date"`
	Outcome    string               `json:"outcome"`
	Confidence int                  `json:"confidence"`
	Agents     map[AgentType]string `json:"agents"`
}

func votes(marketing, product, sales, tech, ops string) map[AgentType]string {
	return map[AgentType]string{Marketing: marketing, Product: product, Sales: sales, Tech: tech, Ops: ops}
}

var decisions = []Decision{
	{ID: 1, Title: "Market entry strategy", Theme: ThemeMarket, Impact: 0.9, Date: "Jan 15, 2026", Outcome: "Go B2B first, pivot to B2C later", Confidence: 78,
		Agents: votes("agree", "agree", "strongly agree", "neutral", "agree")},
	{ID: 2, Title: "MVP feature scope", Theme: ThemeProduct, Impact: 0.85, Date: "Jan 22, 2026", Outcome: "Ship core 3 features, defer analytics", Confidence: 82,
		Agents: votes("disagree", "strongly agree", "agree", "agree", "agree")},
	{ID: 3, Title: "Hiring first engineer", Theme: ThemeTeam, Impact: 0.7, Date: "Feb 1, 2026", Outcome: "Hire full-stack senior, defer DevOps", Confidence: 91,
		Agents: votes("neutral", "agree", "neutral", "strongly agree", "agree")},
	{ID: 4, Title: "Pricing model selection", Theme: ThemeMarket, Impact: 0.95, Date: "Feb 8, 2026", Outcome: "Freemium with usage-based tier", Confidence: 65,
		Agents: votes("agree", "disagree", "strongly agree", "neutral", "disagree")},
	{ID: 5, Title: "Tech stack decision", Theme: ThemeProduct, Impact: 0.8, Date: "Feb 12, 2026", Outcome: "Next.js + FastAPI + SQLite for MVP", Confidence: 94,
		Agents: votes("neutral", "agree", "neutral", "strongly agree", "agree")},
	{ID: 6, Title: "Launch timeline", Theme: ThemeTeam, Impact: 0.75, Date: "Feb 18, 2026", Outcome: "Soft launch March 1, public March 15", Confidence: 72,
		Agents: votes("strongly agree", "agree", "agree", "disagree", "agree")},
	{ID: 7, Title: "Content marketing strategy", Theme: ThemeMarket, Impact: 0.6, Date: "Feb 22, 2026", Outcome: "LinkedIn + Twitter thought leadership campaign", Confidence: 88,
		Agents: votes("strongly agree", "neutral", "agree", "neutral", "neutral")},
	{ID: 8, Title: "Security audit scope", Theme: ThemeProduct, Impact: 0.65, Date: "Feb 25, 2026", Outcome: "Critical paths only pre-launch; full audit Q2", Confidence: 76,
		Agents: votes("neutral", "agree", "neutral", "agree", "strongly agree")},
}

func (d Decision) clone() Decision {
	agents := make(map[AgentType]string, len(d.Agents))
	for k, v := range d.Agents {
		agents[k] = v
	}
	d.Agents = agents
	return d
}

// Decisions returns the decision log, oldest first.
func Decisions() []Decision {
	out := make([]Decision, len(decisions))
	for i, d := range decisions {
		out[i] = d.clone()
	}
	return out
}

func DecisionByID(id int) (Decision, bool) {
	for _, d := range decisions {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return Decision{}, false
}

// DecisionsByTheme filters the log, keeping order.
func DecisionsByTheme(theme Theme) []Decision {
	out := []Decision{}
	for _, d := range decisions {
		if d.Theme == theme {
			out = append(out, d.clone())
		}
	}
	return out
}
