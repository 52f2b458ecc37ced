package catalog

type Milestone struct {
	ID     string               `json:"id"`
	Label  string               `json:"label"`
	Time   string               `json:"time"`
	Color  string               `json:"color"`
	Status string               `json:"status"`
	Tasks  []string             `json:"tasks"`
	Agents map[AgentType]string `json:"agents"`
}

type Alignment struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Color  string `json:"color"`
}

// Roadmap is the timeline view: milestones plus current team alignment.
type Roadmap struct {
	Milestones []Milestone `json:"milestones"`
	Alignment  []Alignment `json:"alignment"`
}

var milestones = []Milestone{
	{ID: "mvp", Label: "MVP", Time: "Now", Color: "#6C3BFF", Status: "active",
		Tasks:  []string{"Core product build", "Landing page launch", "First 50 users"},
		Agents: votes("caution", "ok", "ok", "ok", "ok")},
	{ID: "v1", Label: "V1", Time: "2 weeks", Color: "#00A3FF", Status: "upcoming",
		Tasks:  []string{"User feedback loop", "Analytics integration", "Payment flow"},
		Agents: votes("ok", "ok", "caution", "ok", "ok")},
	{ID: "v2", Label: "V2", Time: "1 month", Color: "#00FF9D", Status: "upcoming",
		Tasks:  []string{"Scale infrastructure", "Marketing campaigns", "Team hiring"},
		Agents: votes("ok", "caution", "ok", "caution", "ok")},
	{ID: "scale", Label: "Scale", Time: "3 months", Color: "#FF6B3B", Status: "future",
		Tasks:  []string{"Enterprise features", "API platform", "International expansion"},
		Agents: votes("ok", "ok", "ok", "ok", "caution")},
}

var alignment = []Alignment{
	{Name: "Marketing", Status: "ok", Color: "#FF6B3B"},
	{Name: "Product", Status: "ok", Color: "#00A3FF"},
	{Name: "Sales", Status: "caution", Color: "#00FF9D"},
	{Name: "Tech", Status: "ok", Color: "#E0E0FF"},
	{Name: "Ops", Status: "ok", Color: "#8A2BE2"},
}

func (m Milestone) clone() Milestone {
	m.Tasks = append([]string(nil), m.Tasks...)
	agents := make(map[AgentType]string, len(m.Agents))
	for k, v := range m.Agents {
		agents[k] = v
	}
	m.Agents = agents
	return m
}

func CurrentRoadmap() Roadmap {
	ms := make([]Milestone, len(milestones))
	for i, m := range milestones {
		ms[i] = m.clone()
	}
	return Roadmap{
		Milestones: ms,
		Alignment:  append([]Alignment(nil), alignment...),
	}
}

func MilestoneByID(id string) (Milestone, bool) {
	for _, m := range milestones {
		if m.ID == id {
			return m.clone(), true
		}
	}
	return Milestone{}, false
}

// ActiveMilestone is the milestone selected when the page first opens.
func ActiveMilestone() Milestone {
	for _, m := range milestones {
		if m.Status == "active" {
			return m.clone()
		}
	}
	return milestones[0].clone()
}
