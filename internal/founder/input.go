package founder

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"UltraNova/internal/teams"
)

var ErrInvalidInput = errors.New("invalid founder input")

const (
	Aggressive   = "aggressive"
	Balanced     = "balanced"
	Conservative = "conservative"
)

// Input describes the founder's situation for one think run.
type Input struct {
	Idea              string   `json:"idea"`
	BusinessID        string   `json:"business_id"`
	Personality       string   `json:"personality"`
	RunwayMonths      int      `json:"runway_months"`
	ProductClarity    bool     `json:"product_clarity"`
	RequestedFeatures []string `json:"requested_features"`
}

func DefaultInput() Input {
	return Input{
		Personality:       Balanced,
		RunwayMonths:      12,
		ProductClarity:    true,
		RequestedFeatures: []string{},
	}
}

// UnmarshalJSON applies defaults for omitted fields.
func (in *Input) UnmarshalJSON(b []byte) error {
	type plain Input
	p := plain(DefaultInput())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*in = Input(p)
	return nil
}

func (in Input) Normalize() Input {
	in.Idea = strings.TrimSpace(in.Idea)
	in.BusinessID = strings.TrimSpace(in.BusinessID)
	in.Personality = strings.ToLower(strings.TrimSpace(in.Personality))
	if in.Personality == "" {
		in.Personality = Balanced
	}
	if in.RequestedFeatures == nil {
		in.RequestedFeatures = []string{}
	}
	return in
}

func (in Input) Validate() error {
	switch {
	case in.Idea == "":
		return fmt.Errorf("%w: idea is required", ErrInvalidInput)
	case in.BusinessID == "":
		return fmt.Errorf("%w: business_id is required", ErrInvalidInput)
	case in.RunwayMonths < 0:
		return fmt.Errorf("%w: runway_months must not be negative", ErrInvalidInput)
	}
	return nil
}

func (in Input) teamContext() teams.Context {
	return teams.Context{
		RunwayMonths:      in.RunwayMonths,
		ProductClarity:    in.ProductClarity,
		RequestedFeatures: in.RequestedFeatures,
	}
}
