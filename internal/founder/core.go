// Package founder implements the think pipeline and the co-founder chat.
package founder

import (
	"context"
	"fmt"
	"log"

	"UltraNova/internal/teams"
)

// Recorder stores an audit row for every think run.
type Recorder interface {
	RecordDecision(ctx context.Context, businessID string, decision Decision, in Input) error
}

type Result struct {
	Vision       string         `json:"vision"`
	Decision     Decision       `json:"decision"`
	Roadmap      Roadmap        `json:"roadmap"`
	TeamAnalysis teams.Analysis `json:"team_analysis"`
}

type Core struct {
	teams *teams.Orchestrator
}

func NewCore(orchestrator *teams.Orchestrator) *Core {
	if orchestrator == nil {
		orchestrator = teams.NewOrchestrator()
	}
	return &Core{teams: orchestrator}
}

// Process runs one think pass. audit may be nil.
func (c *Core) Process(ctx context.Context, in Input, audit Recorder) (Result, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	strategy := BuildStrategy(in)
	decision := Decide(strategy)
	decision.Reason = ApplyTone(in.Personality, decision.Reason)
	roadmap := PlanRoadmap(strategy)

	analysis, err := c.teams.Evaluate(ctx, in.teamContext())
	if err != nil {
		return Result{}, fmt.Errorf("team analysis: %w", err)
	}

	if audit != nil {
		if err := audit.RecordDecision(ctx, in.BusinessID, decision, in); err != nil {
			log.Printf("Error recording decision for business %s: %v", in.BusinessID, err)
		}
	}

	return Result{
		Vision:       strategy.Vision,
		Decision:     decision,
		Roadmap:      roadmap,
		TeamAnalysis: analysis,
	}, nil
}
