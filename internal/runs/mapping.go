package runs

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/loom/internal/engine"
	"github.com/JaimeStill/loom/pkg/repository"
)

func scanRun(s repository.Scanner) (Run, error) {
	var r Run
	var outputsRaw []byte

	if err := s.Scan(&r.ID, &r.WorkflowID, &r.WorkflowName, &r.InputText, &outputsRaw, &r.CreatedAt); err != nil {
		return r, err
	}

	if err := json.Unmarshal(outputsRaw, &r.StepOutputs); err != nil {
		return r, fmt.Errorf("unmarshal step_outputs: %w", err)
	}

	r.TotalExecutionTimeMs = engine.TotalExecutionTime(r.StepOutputs)
	return r, nil
}

func marshalOutputs(results []engine.Result) ([]byte, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("marshal step_outputs: %w", err)
	}
	return data, nil
}
