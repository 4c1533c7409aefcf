package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// TargetBounds is a soft plausibility window for an achievement target. The
// bounds catch obviously wrong input; they are configurable thresholds, not
// business law.
type TargetBounds struct {
	Min float64
	Max float64
}

// ChallengeRules holds the tunable limits used by Challenge validation.
// Bounds are keyed by "Category|metric".
type ChallengeRules struct {
	MaxDurationDays int
	MaxMetricLen    int
	Bounds          map[string]TargetBounds
	// ClassesPerDay caps a Classes target at ClassesPerDay × duration days.
	ClassesPerDay float64
}

// DefaultChallengeRules returns the stock plausibility thresholds.
func DefaultChallengeRules() ChallengeRules {
	return ChallengeRules{
		MaxDurationDays: 365,
		MaxMetricLen:    50,
		Bounds: map[string]TargetBounds{
			boundsKey(domain.CategoryWeightlifting, "pounds"): {Min: 5, Max: 1000},
			boundsKey(domain.CategoryCardio, "miles"):         {Min: 0.1, Max: 5000},
		},
		ClassesPerDay: 2,
	}
}

func boundsKey(category, metric string) string {
	return category + "|" + strings.ToLower(metric)
}

// NormalizedChallenge is the cleaned-up output of a successful validation.
type NormalizedChallenge struct {
	ChallengeType string
	Category      string
	Title         string
	Goal          string
	StartDate     string
	EndDate       string
	Description   string
	Privacy       string
	TargetValue   float64
	Metric        string
	DurationDays  int
}

// Challenge validates raw challenge input against the rules. today is the
// start of the current day; all checks run independently and every violation
// is appended in field order.
func (r ChallengeRules) Challenge(in ports.CreateChallengeInput, today time.Time) (NormalizedChallenge, []string) {
	var out NormalizedChallenge
	var errs []string

	if strings.TrimSpace(in.ChallengeType) == "" {
		errs = append(errs, "Challenge type is required")
	} else {
		out.ChallengeType = matchEnum(in.ChallengeType, domain.ChallengeTimeBased, domain.ChallengeAchievementBased)
		if out.ChallengeType == "" {
			errs = append(errs, "Challenge type must be Time-Based or Achievement-Based")
		}
	}

	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "Category is required")
	} else {
		out.Category = matchEnum(in.Category, domain.CategoryWeightlifting, domain.CategoryCardio, domain.CategoryClasses)
		if out.Category == "" {
			errs = append(errs, "Category must be one of: Weightlifting, Cardio, Classes")
		}
	}

	out.Title = strings.TrimSpace(in.Title)
	if out.Title == "" {
		errs = append(errs, "Challenge title is required")
	} else if utf8.RuneCountInString(out.Title) > 100 {
		errs = append(errs, "Challenge title must be less than 100 characters")
	}

	out.Goal = strings.TrimSpace(in.Goal)
	if out.Goal == "" {
		errs = append(errs, "Goal is required")
	} else if utf8.RuneCountInString(out.Goal) > 200 {
		errs = append(errs, "Goal must be less than 200 characters")
	}

	out.StartDate = strings.TrimSpace(in.StartDate)
	out.EndDate = strings.TrimSpace(in.EndDate)
	if out.StartDate == "" {
		errs = append(errs, "Start date is required")
	}
	if out.EndDate == "" {
		errs = append(errs, "End date is required")
	}

	if out.StartDate != "" && out.EndDate != "" {
		start, errStart := time.Parse(DateLayout, out.StartDate)
		end, errEnd := time.Parse(DateLayout, out.EndDate)
		if errStart != nil || errEnd != nil {
			errs = append(errs, "Invalid date format. Use YYYY-MM-DD")
		} else {
			if !end.After(start) {
				errs = append(errs, "End date must be after start date")
			}
			if start.Before(today) {
				errs = append(errs, "Start date cannot be in the past")
			}
			out.DurationDays = int(end.Sub(start).Hours() / 24)
			if out.DurationDays > r.MaxDurationDays {
				errs = append(errs, fmt.Sprintf("Challenge duration cannot exceed %d days", r.MaxDurationDays))
			}
		}
	}

	out.Description = strings.TrimSpace(in.Description)
	if out.Description == "" {
		errs = append(errs, "Challenge description is required")
	} else if utf8.RuneCountInString(out.Description) < 10 {
		errs = append(errs, "Description must be at least 10 characters")
	} else if utf8.RuneCountInString(out.Description) > 1000 {
		errs = append(errs, "Description must be less than 1000 characters")
	}

	out.Privacy = strings.ToLower(strings.TrimSpace(in.Privacy))
	if out.Privacy != domain.PrivacyPrivate && out.Privacy != domain.PrivacyPublic {
		errs = append(errs, "Privacy setting is required (private or public)")
	}

	if out.ChallengeType == domain.ChallengeAchievementBased {
		errs = append(errs, r.validateTarget(&out, in)...)
	}

	return out, errs
}

// validateTarget applies the Achievement-Based target/metric rules, including
// the category-specific plausibility bounds.
func (r ChallengeRules) validateTarget(out *NormalizedChallenge, in ports.CreateChallengeInput) []string {
	var errs []string

	rawTarget := strings.TrimSpace(in.TargetValue)
	if rawTarget == "" {
		errs = append(errs, "Target value is required for achievement challenges")
	} else {
		target, err := strconv.ParseFloat(rawTarget, 64)
		if err != nil || target <= 0 {
			errs = append(errs, "Target value must be a positive number")
		} else {
			out.TargetValue = target
		}
	}

	out.Metric = strings.TrimSpace(in.Metric)
	if out.Metric == "" {
		errs = append(errs, "Metric is required for achievement challenges")
	} else if utf8.RuneCountInString(out.Metric) > r.MaxMetricLen {
		errs = append(errs, fmt.Sprintf("Metric must be less than %d characters", r.MaxMetricLen))
	}

	if out.TargetValue <= 0 || out.Metric == "" || out.Category == "" {
		return errs
	}

	// Classes scale with challenge length rather than a fixed window.
	if out.Category == domain.CategoryClasses && strings.EqualFold(out.Metric, "classes") {
		if out.DurationDays > 0 {
			limit := r.ClassesPerDay * float64(out.DurationDays)
			if out.TargetValue > limit {
				errs = append(errs, fmt.Sprintf(
					"A target of %g classes seems unrealistic for a %d-day challenge (max %g)",
					out.TargetValue, out.DurationDays, limit))
			}
		}
		return errs
	}

	if b, ok := r.Bounds[boundsKey(out.Category, out.Metric)]; ok {
		if out.TargetValue < b.Min || out.TargetValue > b.Max {
			errs = append(errs, fmt.Sprintf(
				"A target of %g %s seems unrealistic for a %s challenge (expected between %g and %g)",
				out.TargetValue, strings.ToLower(out.Metric), strings.ToLower(out.Category), b.Min, b.Max))
		}
	}

	return errs
}
