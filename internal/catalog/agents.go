// Package catalog holds the fixed sample data shown on the team, decisions,
// roadmap and console screens. Accessors return copies; nothing here changes
// at runtime.
package catalog

// AgentType names one of the five council personas.
type AgentType string

const (
	Marketing AgentType = "marketing"
	Product   AgentType = "product"
	Sales     AgentType = "sales"
	Tech      AgentType = "tech"
	Ops       AgentType = "ops"
)

// AgentTypes lists the personas in display order.
var AgentTypes = []AgentType{Marketing, Product, Sales, Tech, Ops}

func (t AgentType) Label() string {
	switch t {
	case Marketing:
		return "Marketing"
	case Product:
		return "Product"
	case Sales:
		return "Sales"
	case Tech:
		return "Tech"
	case Ops:
		return "Ops"
	}
	return string(t)
}

func (t AgentType) Color() string {
	switch t {
	case Marketing:
		return "#FF6B3B"
	case Product:
		return "#00A3FF"
	case Sales:
		return "#00FF9D"
	case Tech:
		return "#E0E0FF"
	case Ops:
		return "#8A2BE2"
	}
	return "#6C3BFF"
}

type AgentProfile struct {
	Type       AgentType `json:"type"`
	Stance     string    `json:"stance"`
	Confidence int       `json:"confidence"`
	Reasoning  []string  `json:"reasoning"`
	Requests   []string  `json:"requests"`
	Color      string    `json:"color"`
}

var agentProfiles = []AgentProfile{
	{
		Type: Marketing, Stance: "Not ready for launch", Confidence: 34,
		Reasoning: []string{"Product clarity is only 42%", "Target market undefined", "Competitor analysis missing", "Messaging hasn't been tested"},
		Requests:  []string{"Define ICP within 48h", "Create messaging matrix", "Run 5 customer interviews"},
		Color:     "#FF6B3B",
	},
	{
		Type: Product, Stance: "Core features solid, needs polish", Confidence: 72,
		Reasoning: []string{"Architecture is scalable", "Core user flow validated", "Missing 3 critical integrations", "Mobile experience needs work"},
		Requests:  []string{"Prioritize API integrations", "Complete mobile responsive design", "Set up error monitoring"},
		Color:     "#00A3FF",
	},
	{
		Type: Sales, Stance: "Enterprise path is viable", Confidence: 68,
		Reasoning: []string{"B2B opportunity identified", "Pricing model needs validation", "No sales collateral exists", "3 warm leads in pipeline"},
		Requests:  []string{"Build pitch deck by Friday", "Create demo environment", "Schedule 3 discovery calls"},
		Color:     "#00FF9D",
	},
	{
		Type: Tech, Stance: "Infrastructure can handle 10x", Confidence: 88,
		Reasoning: []string{"Auto-scaling configured", "CI/CD pipeline operational", "Test coverage at 78%", "Security audit passed"},
		Requests:  []string{"Increase test coverage to 85%", "Set up staging environment", "Document API endpoints"},
		Color:     "#E0E0FF",
	},
	{
		Type: Ops, Stance: "Monitoring all metrics", Confidence: 91,
		Reasoning: []string{"Burn rate within budget", "Runway is 18 months", "No compliance blockers", "Team velocity stable"},
		Requests:  []string{"Review vendor contracts", "Update financial projections", "Finalize Q2 OKRs"},
		Color:     "#8A2BE2",
	},
}

func (p AgentProfile) clone() AgentProfile {
	p.Reasoning = append([]string(nil), p.Reasoning...)
	p.Requests = append([]string(nil), p.Requests...)
	return p
}

// AgentProfiles returns the team page profiles in display order.
func AgentProfiles() []AgentProfile {
	out := make([]AgentProfile, len(agentProfiles))
	for i, p := range agentProfiles {
		out[i] = p.clone()
	}
	return out
}

func AgentProfileByType(t AgentType) (AgentProfile, bool) {
	for _, p := range agentProfiles {
		if p.Type == t {
			return p.clone(), true
		}
	}
	return AgentProfile{}, false
}
