// Package planner generates multi-day workout plans from a user profile and
// the external exercise catalog.
package planner

import (
	"context"
	"strconv"
	"strings"

	"example.com/gamification/internal/catalog"
	"example.com/gamification/internal/matcher"
	"example.com/gamification/internal/observability"
)

// UserProfile is the input to plan generation.
type UserProfile struct {
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Goal            string `json:"goal"`
	ExperienceLevel string `json:"experience_level"`
	DaysPerWeek     int    `json:"days_per_week"`
}

// GeneratedExercise is one resolved (or synthesized) exercise in a plan.
type GeneratedExercise struct {
	Name        string `json:"name"`
	BodyPart    string `json:"body_part"`
	Target      string `json:"target"`
	Equipment   string `json:"equipment"`
	Sets        int    `json:"sets"`
	RepRange    string `json:"rep_range"`
	RestSeconds int    `json:"rest_seconds"`
	CatalogID   string `json:"catalog_id,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// WorkoutDay is one training day of a generated plan.
type WorkoutDay struct {
	Label     string              `json:"label"`
	Focus     string              `json:"focus"`
	Exercises []GeneratedExercise `json:"exercises"`
}

// GeneratedPlan is the full generation output.
type GeneratedPlan struct {
	Days              []WorkoutDay `json:"days"`
	CardioRecommended bool         `json:"cardio_recommended"`
	Recommendation    string       `json:"recommendation"`
}

// PlanStore persists generated plans: one stored workout per day, exploded
// into one row per individual set, set_order = exerciseIndex*100 + setIndex.
// Implementations must leave no partial plan behind on failure.
type PlanStore interface {
	SavePlan(ctx context.Context, userID string, plan GeneratedPlan) ([]string, error)
}

// Generate builds a plan from the profile and catalog entries. It is pure:
// no persistence, and an unresolvable slot degrades to a placeholder rather
// than failing the run.
func Generate(profile UserProfile, entries []catalog.Entry) GeneratedPlan {
	days := profile.DaysPerWeek
	if days < 1 {
		days = 3
	}
	if days > 7 {
		days = 7
	}

	senior := profile.Age >= seniorAge
	bucket := normalizeGender(profile.Gender)
	if senior {
		bucket = bucketSenior
	}

	cycle := templatesFor(profile.Goal, days)
	rest := restSeconds(profile.Goal)
	reps := repRange(profile.Goal, profile.ExperienceLevel)

	plan := GeneratedPlan{
		CardioRecommended: cardioRecommendedByGoal[profile.Goal],
		Recommendation:    buildRecommendation(profile),
	}

	for day := 0; day < days; day++ {
		tmpl := cycle[day%len(cycle)]
		slots := tmpl.Slots[bucket]
		if len(slots) == 0 {
			slots = tmpl.Slots[bucketMale]
		}

		workout := WorkoutDay{
			Label: "Day " + strconv.Itoa(day+1) + ": " + tmpl.Name,
			Focus: tmpl.Focus,
		}

		sets := setsFor(profile.Goal, tmpl.Category)
		if senior && sets > 2 {
			sets--
		}

		for _, slot := range slots {
			exercise := resolveSlot(slot, entries)
			exercise.Sets = capSets(sets)
			exercise.RestSeconds = rest
			exercise.RepRange = adjustedRepRange(slot, reps)
			workout.Exercises = append(workout.Exercises, exercise)
		}
		plan.Days = append(plan.Days, workout)
	}

	observability.RecordPlanGenerated()
	return plan
}

// resolveSlot runs the matcher, retries alternative spellings, and finally
// synthesizes a placeholder so one unmatched name never sinks the plan.
func resolveSlot(slot Slot, entries []catalog.Entry) GeneratedExercise {
	entry, tier, ok := matcher.MatchTier(slot.Exercise, entries)
	if !ok {
		for _, alt := range alternativeSpellings[strings.ToLower(slot.Exercise)] {
			if entry, tier, ok = matcher.MatchTier(alt, entries); ok {
				break
			}
		}
	}
	observability.RecordMatchTier(tier)

	if ok {
		return GeneratedExercise{
			Name:      entry.Name,
			BodyPart:  entry.BodyPart,
			Target:    entry.Target,
			Equipment: entry.Equipment,
			CatalogID: entry.ID,
		}
	}
	return synthesizePlaceholder(slot.Exercise)
}

// synthesizePlaceholder infers body part, target and equipment from keyword
// rules on the template name.
func synthesizePlaceholder(name string) GeneratedExercise {
	placeholder := GeneratedExercise{
		Name:        name,
		BodyPart:    "full body",
		Target:      "general",
		Equipment:   "body weight",
		Placeholder: true,
	}
	lower := strings.ToLower(name)
	for _, rule := range placeholderRules {
		if strings.Contains(lower, rule.keyword) {
			placeholder.BodyPart = rule.bodyPart
			placeholder.Target = rule.target
			placeholder.Equipment = rule.equipment
			break
		}
	}
	return placeholder
}

// adjustedRepRange applies the per-exercise overrides: calf and crunch
// movements get the fixed high-rep range, planks keep the template's own
// duration value (seconds, not reps).
func adjustedRepRange(slot Slot, goalRange string) string {
	lower := strings.ToLower(slot.Exercise)
	switch {
	case strings.Contains(lower, "plank"):
		if slot.Reps != "" {
			return slot.Reps
		}
		return goalRange
	case strings.Contains(lower, "calf"), strings.Contains(lower, "crunch"):
		return highRepRange
	default:
		return goalRange
	}
}

// buildRecommendation concatenates the four independently looked-up note
// fragments.
func buildRecommendation(profile UserProfile) string {
	goalFragment, ok := goalNotes[profile.Goal]
	if !ok {
		goalFragment = goalNotes[GoalStayHealthy]
	}
	experienceFragment, ok := experienceNotes[profile.ExperienceLevel]
	if !ok {
		experienceFragment = experienceNotes[ExperienceNovice]
	}
	return goalFragment + " " + experienceFragment + " " + ageNote(profile.Age) + " " + genderNote(profile.Gender)
}

func normalizeGender(gender string) string {
	if strings.EqualFold(strings.TrimSpace(gender), "female") {
		return bucketFemale
	}
	return bucketMale
}
