package founder

import (
	"fmt"
	"strings"
)

const (
	focusProceed = "proceed"
	focusClarify = "clarify"
	focusNarrow  = "narrow"
	focusRunway  = "runway"
)

type Strategy struct {
	Vision string `json:"vision"`
	Focus  string `json:"focus"`
}

type Decision struct {
	Chosen     string  `json:"chosen"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

type Roadmap struct {
	Now   []string `json:"now"`
	Next  []string `json:"next"`
	Later []string `json:"later"`
}

// BuildStrategy turns the idea into a vision and picks the single thing
// that most needs attention. Clarity beats scope beats runway.
func BuildStrategy(in Input) Strategy {
	vision := fmt.Sprintf("Build %s.", strings.TrimRight(in.Idea, ".!? "))

	focus := focusProceed
	switch {
	case !in.ProductClarity:
		focus = focusClarify
	case len(in.RequestedFeatures) > 1:
		focus = focusNarrow
	case in.RunwayMonths < 6:
		focus = focusRunway
	}
	return Strategy{Vision: vision, Focus: focus}
}

func Decide(s Strategy) Decision {
	switch s.Focus {
	case focusClarify:
		return Decision{Chosen: "Clarify product", Confidence: 0.45, Reason: "Nobody can sell what the founder cannot explain in one sentence."}
	case focusNarrow:
		return Decision{Chosen: "Narrow scope", Confidence: 0.6, Reason: "Ship one feature that works before asking for three."}
	case focusRunway:
		return Decision{Chosen: "Extend runway", Confidence: 0.5, Reason: "Revenue or funding comes before anything else on this timeline."}
	}
	return Decision{Chosen: "Proceed", Confidence: 0.82, Reason: "The plan is focused and the runway covers it."}
}

// ApplyTone prefixes the message in the founder's voice.
func ApplyTone(personality, message string) string {
	var prefix string
	switch personality {
	case Aggressive:
		prefix = "Be direct:"
	case Conservative:
		prefix = "Consider carefully:"
	}
	return strings.TrimSpace(prefix + " " + message)
}

func PlanRoadmap(s Strategy) Roadmap {
	rm := Roadmap{
		Now:   []string{"Validate ICP", "Launch Landing Page"},
		Next:  []string{"Build MVP", "Start Beta Users"},
		Later: []string{"Fundraising", "Scale Growth"},
	}
	switch s.Focus {
	case focusClarify:
		rm.Now = append([]string{"Write a one-sentence product definition"}, rm.Now...)
	case focusNarrow:
		rm.Now = append([]string{"Cut the feature list to one"}, rm.Now...)
	case focusRunway:
		rm.Now = append([]string{"Close first paying customer"}, rm.Now...)
		rm.Later = []string{"Scale Growth", "Fundraising"}
	}
	return rm
}
