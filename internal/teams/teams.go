// Package teams runs the five department evaluators over a founder's
// situation and folds their verdicts into one analysis.
package teams

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	Marketing = "marketing"
	Sales     = "sales"
	Product   = "product"
	Tech      = "tech"
	Ops       = "ops"
)

const (
	weakStrategyTruth    = "This strategy is weak. Decide fast or pivot."
	marketConfusionTruth = "You are trying to market confusion."
	weakThreshold        = 0.5
)

// Context is what every evaluator sees.
type Context struct {
	RunwayMonths      int
	ProductClarity    bool
	RequestedFeatures []string
}

type Verdict struct {
	Allowed    bool    `json:"allowed"`
	Confidence float64 `json:"confidence"`
}

type Evaluator interface {
	Name() string
	Evaluate(ctx context.Context, in Context) (Verdict, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc struct {
	Team string
	Fn   func(Context) Verdict
}

func (e EvaluatorFunc) Name() string { return e.Team }

func (e EvaluatorFunc) Evaluate(_ context.Context, in Context) (Verdict, error) {
	return e.Fn(in), nil
}

type Conflict struct {
	Status   string   `json:"status"`
	Blocking []string `json:"blocking,omitempty"`
}

type ConfidenceSummary struct {
	Overall float64 `json:"overall_confidence"`
}

type Analysis struct {
	Teams      map[string]Verdict `json:"teams"`
	Conflict   Conflict           `json:"conflict"`
	Confidence ConfidenceSummary  `json:"confidence"`
	HardTruths []string           `json:"hard_truths"`
}

type Orchestrator struct {
	evaluators []Evaluator
}

func NewOrchestrator(evaluators ...Evaluator) *Orchestrator {
	if len(evaluators) == 0 {
		evaluators = Default()
	}
	return &Orchestrator{evaluators: evaluators}
}

// Evaluate runs every evaluator concurrently. The first evaluator error
// cancels the rest.
func (o *Orchestrator) Evaluate(ctx context.Context, in Context) (Analysis, error) {
	verdicts := make([]Verdict, len(o.evaluators))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, ev := range o.evaluators {
		eg.Go(func() error {
			v, err := ev.Evaluate(egCtx, in)
			if err != nil {
				return err
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Analysis{}, err
	}

	teams := make(map[string]Verdict, len(o.evaluators))
	for i, ev := range o.evaluators {
		teams[ev.Name()] = verdicts[i]
	}

	overall := OverallConfidence(teams)
	return Analysis{
		Teams:      teams,
		Conflict:   ResolveConflict(teams),
		Confidence: ConfidenceSummary{Overall: overall},
		HardTruths: HardTruths(teams, overall),
	}, nil
}

// OverallConfidence is the mean team confidence rounded to two decimals.
func OverallConfidence(teams map[string]Verdict) float64 {
	if len(teams) == 0 {
		return 0
	}
	var sum float64
	for _, v := range teams {
		sum += v.Confidence
	}
	return math.Round(sum/float64(len(teams))*100) / 100
}

func ResolveConflict(teams map[string]Verdict) Conflict {
	var blocking []string
	for name, v := range teams {
		if !v.Allowed {
			blocking = append(blocking, name)
		}
	}
	if len(blocking) == 0 {
		return Conflict{Status: "aligned"}
	}
	sort.Strings(blocking)
	return Conflict{Status: "conflict", Blocking: blocking}
}

func HardTruths(teams map[string]Verdict, overall float64) []string {
	truths := []string{}
	if overall < weakThreshold {
		truths = append(truths, weakStrategyTruth)
	}
	if v, ok := teams[Marketing]; ok && !v.Allowed {
		truths = append(truths, marketConfusionTruth)
	}
	return truths
}
