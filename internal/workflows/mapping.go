package workflows

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/loom/internal/engine"
	"github.com/JaimeStill/loom/internal/steps"
	"github.com/JaimeStill/loom/pkg/repository"
)

func scanWorkflow(s repository.Scanner) (Workflow, error) {
	var w Workflow
	var stepsRaw []byte

	if err := s.Scan(&w.ID, &w.Name, &stepsRaw, &w.CreatedAt); err != nil {
		return w, err
	}

	if err := json.Unmarshal(stepsRaw, &w.Steps); err != nil {
		return w, fmt.Errorf("unmarshal steps: %w", err)
	}

	return w, nil
}

func scanSummary(s repository.Scanner) (Summary, error) {
	var sum Summary
	var stepsRaw []byte

	if err := s.Scan(&sum.ID, &sum.Name, &stepsRaw, &sum.CreatedAt, &sum.RunCount); err != nil {
		return sum, err
	}

	if err := json.Unmarshal(stepsRaw, &sum.Steps); err != nil {
		return sum, fmt.Errorf("unmarshal steps: %w", err)
	}

	return sum, nil
}

func scanRunSummary(s repository.Scanner) (RunSummary, error) {
	var r RunSummary
	var outputsRaw []byte

	if err := s.Scan(&r.ID, &r.InputText, &outputsRaw, &r.CreatedAt); err != nil {
		return r, err
	}

	if err := json.Unmarshal(outputsRaw, &r.StepOutputs); err != nil {
		return r, fmt.Errorf("unmarshal step_outputs: %w", err)
	}

	r.TotalExecutionTimeMs = engine.TotalExecutionTime(r.StepOutputs)
	return r, nil
}

func marshalSteps(specs []steps.Spec) ([]byte, error) {
	data, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("marshal steps: %w", err)
	}
	return data, nil
}
