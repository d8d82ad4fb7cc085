package batch

import (
	"fmt"

	"Hydrus/internal/calc/design"
)

// Input is a list of scenarios to compare, all computed against the same
// constants. Each scenario is independent; a bad one fails the whole batch so
// the caller never mixes partial output with valid results.
type Input struct {
	Items     []design.Inputs   `json:"items"`
	Constants *design.Constants `json:"constants"`
}

type Result struct {
	Results []design.Results `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	constants := design.DefaultConstants()
	if in.Constants != nil {
		constants = *in.Constants
	}
	out := Result{Results: make([]design.Results, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := design.Calculate(item, constants)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
