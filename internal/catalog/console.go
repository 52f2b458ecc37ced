package catalog

type ConsoleAgent struct {
	Type    AgentType `json:"type"`
	Status  string    `json:"status"`
	Stance  string    `json:"stance"`
	Message string    `json:"message"`
}

type DecisionOption struct {
	Label      string `json:"label"`
	Risk       int    `json:"risk"`
	Confidence int    `json:"confidence"`
	Color      string `json:"color"`
}

// Console is the live debate screen snapshot.
type Console struct {
	Agents  []ConsoleAgent   `json:"agents"`
	Options []DecisionOption `json:"options"`
	// SpeakingOrder is the order agents respond once a question is submitted,
	// as indexes into Agents.
	SpeakingOrder []int `json:"speaking_order"`
}

var consoleAgents = []ConsoleAgent{
	{Type: Marketing, Status: "active", Stance: "Debating", Message: "Market timing is critical. We need positioning clarity before launch."},
	{Type: Product, Status: "waiting", Stance: "Waiting", Message: "Ready to evaluate technical feasibility once scope is defined."},
	{Type: Sales, Status: "active", Stance: "Has proposal", Message: "I see a direct-to-enterprise path. Let me outline the GTM."},
	{Type: Tech, Status: "calculating", Stance: "Calculating", Message: "Running architecture cost analysis for both options..."},
	{Type: Ops, Status: "idle", Stance: "Monitoring", Message: "All metrics within acceptable range. Standing by for veto review."},
}

var decisionOptions = []DecisionOption{
	{Label: "Option A: Build analytics first", Risk: 30, Confidence: 72, Color: "#00A3FF"},
	{Label: "Option B: Launch with basic metrics", Risk: 15, Confidence: 85, Color: "#00FF9D"},
	{Label: "Option C: Full suite before launch", Risk: 45, Confidence: 58, Color: "#FF6B3B"},
}

var speakingOrder = []int{0, 2, 3, 1, 4}

func CurrentConsole() Console {
	return Console{
		Agents:        append([]ConsoleAgent(nil), consoleAgents...),
		Options:       append([]DecisionOption(nil), decisionOptions...),
		SpeakingOrder: append([]int(nil), speakingOrder...),
	}
}

// RecommendedOption returns the index of the option with the best
// confidence-to-risk spread.
func RecommendedOption(opts []DecisionOption) int {
	best := -1
	for i, o := range opts {
		if best < 0 || o.Confidence-o.Risk > opts[best].Confidence-opts[best].Risk {
			best = i
		}
	}
	return best
}
