package teams

// Default returns the five department evaluators.
func Default() []Evaluator {
	return []Evaluator{
		EvaluatorFunc{Marketing, marketing},
		EvaluatorFunc{Sales, sales},
		EvaluatorFunc{Product, product},
		EvaluatorFunc{Tech, tech},
		EvaluatorFunc{Ops, ops},
	}
}

// Marketing refuses to promote a product nobody can describe.
func marketing(in Context) Verdict {
	if !in.ProductClarity {
		return Verdict{Allowed: false, Confidence: 0.3}
	}
	return Verdict{Allowed: true, Confidence: 0.7}
}

// Product wants a single feature in flight.
func product(in Context) Verdict {
	if len(in.RequestedFeatures) > 1 {
		return Verdict{Allowed: false, Confidence: 0.4}
	}
	return Verdict{Allowed: true, Confidence: 0.8}
}

// Sales cycles need at least six months of runway.
func sales(in Context) Verdict {
	if in.RunwayMonths < 6 {
		return Verdict{Allowed: false, Confidence: 0.5}
	}
	return Verdict{Allowed: true, Confidence: 0.75}
}

func tech(in Context) Verdict {
	if len(in.RequestedFeatures) > 3 {
		return Verdict{Allowed: false, Confidence: 0.5}
	}
	return Verdict{Allowed: true, Confidence: 0.85}
}

func ops(in Context) Verdict {
	if in.RunwayMonths < 3 {
		return Verdict{Allowed: false, Confidence: 0.4}
	}
	return Verdict{Allowed: true, Confidence: 0.9}
}
