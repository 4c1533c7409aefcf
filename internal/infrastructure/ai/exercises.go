package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// GenerateExercises asks the model for weightlifting exercises targeting the
// selected body parts and muscles. The selection is validated upstream; this
// layer only shapes the prompt and parses the strict JSON reply.
func (c *Client) GenerateExercises(ctx context.Context, sel ports.ExerciseSelection) ([]ports.Exercise, error) {
	content, err := c.complete(ctx, exerciseSystemPrompt, buildExercisePrompt(sel))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Exercises []ports.Exercise `json:"exercises"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("ai: malformed exercise list: %w", err)
	}
	if len(parsed.Exercises) == 0 {
		return nil, fmt.Errorf("ai: no exercises returned")
	}
	return parsed.Exercises, nil
}

const exerciseSystemPrompt = `You are a strength-training assistant. Reply with a single JSON object of the form
{"exercises":[{"name":"...","primary_muscle":"...","secondary_muscles":["..."],"equipment":"...","instructions":["..."]}]}
with 2-4 instruction bullet points per exercise. No prose outside the JSON.`

func buildExercisePrompt(sel ports.ExerciseSelection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate weightlifting exercises that target ONLY these body parts: %s.",
		strings.Join(sel.BodyParts, ", "))
	fmt.Fprintf(&b, " Muscles to hit: %s.", strings.Join(sel.Muscles, ", "))
	return b.String()
}
