package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// bodyPartMuscles maps each selectable body part to the muscles it contains.
var bodyPartMuscles = map[string][]string{
	"Arms":      {"Biceps", "Triceps", "Forearms"},
	"Legs":      {"Quads", "Hamstrings", "Calves", "Glutes", "Abductors", "Adductors"},
	"Chest":     {"Upper Chest", "Middle Chest", "Lower Chest"},
	"Back":      {"Lats", "Traps", "Lower Back", "Rhomboids"},
	"Abs":       {"Upper Abs", "Lower Abs", "Obliques"},
	"Shoulders": {"Front Delts", "Side Delts", "Rear Delts"},
}

// MusclesForBodyParts returns the sorted union of muscles belonging to the
// given body parts. Unknown parts contribute nothing.
func MusclesForBodyParts(parts []string) []string {
	seen := map[string]bool{}
	for _, part := range parts {
		for known, muscles := range bodyPartMuscles {
			if strings.EqualFold(strings.TrimSpace(part), known) {
				for _, m := range muscles {
					seen[m] = true
				}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// ExerciseSelection validates an exercise request. Every selected muscle must
// belong to one of the selected body parts. Checks run independently and
// violations accumulate in field order.
func ExerciseSelection(in ports.ExerciseSelection) (ports.ExerciseSelection, []string) {
	var out ports.ExerciseSelection
	var errs []string

	for _, part := range in.BodyParts {
		if canonical := canonicalBodyPart(part); canonical != "" {
			out.BodyParts = append(out.BodyParts, canonical)
		}
	}
	if len(out.BodyParts) == 0 {
		errs = append(errs, "At least one body part must be selected")
	}

	allowed := MusclesForBodyParts(out.BodyParts)

	var invalid []string
	for _, muscle := range in.Muscles {
		if strings.TrimSpace(muscle) == "" {
			continue
		}
		if canonical := matchEnum(muscle, allowed...); canonical != "" {
			out.Muscles = append(out.Muscles, canonical)
		} else {
			invalid = append(invalid, strings.TrimSpace(muscle))
		}
	}
	if len(out.Muscles) == 0 && len(invalid) == 0 {
		errs = append(errs, "At least one muscle must be selected")
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Sprintf(
			"Invalid muscles for selected body parts: %s. Allowed muscles are: %s",
			strings.Join(invalid, ", "), strings.Join(allowed, ", ")))
	}

	return out, errs
}

func canonicalBodyPart(part string) string {
	for known := range bodyPartMuscles {
		if strings.EqualFold(strings.TrimSpace(part), known) {
			return known
		}
	}
	return ""
}
