package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/gamification/internal/catalog"
)

func TestGenerateFourDayStrengthPlan(t *testing.T) {
	profile := UserProfile{
		Age:             25,
		Gender:          "Male",
		Goal:            GoalGainStrength,
		ExperienceLevel: ExperienceNovice,
		DaysPerWeek:     4,
	}

	plan := Generate(profile, catalog.SeedEntries())

	require.Len(t, plan.Days, 4)
	require.Equal(t, "Day 1: Upper A", plan.Days[0].Label)
	require.Equal(t, "Day 2: Lower A", plan.Days[1].Label)
	for _, day := range plan.Days {
		require.NotEmpty(t, day.Exercises)
		for _, ex := range day.Exercises {
			require.Equal(t, 180, ex.RestSeconds)
			// Upper/lower days always run 2 sets per exercise.
			require.Equal(t, 2, ex.Sets)
			if !isRepOverride(ex.Name) {
				require.Equal(t, "4-6", ex.RepRange)
			}
		}
	}
	require.False(t, plan.CardioRecommended)
	require.NotEmpty(t, plan.Recommendation)
}

func isRepOverride(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "plank") || strings.Contains(lower, "calf") || strings.Contains(lower, "crunch")
}

func TestGeneratePushPullLegsUsesGoalSets(t *testing.T) {
	profile := UserProfile{
		Age:             30,
		Gender:          "Male",
		Goal:            GoalGainMuscle,
		ExperienceLevel: ExperienceIntermediate,
		DaysPerWeek:     6,
	}

	plan := Generate(profile, catalog.SeedEntries())

	require.Len(t, plan.Days, 6)
	require.Equal(t, "Day 1: Push", plan.Days[0].Label)
	for _, ex := range plan.Days[0].Exercises {
		// Push/pull/legs days take the per-goal set count: 3 for muscle gain.
		require.Equal(t, 3, ex.Sets)
		require.Equal(t, 90, ex.RestSeconds)
	}
}

func TestGenerateDefaultsAndClampsDays(t *testing.T) {
	plan := Generate(UserProfile{Goal: GoalStayHealthy}, catalog.SeedEntries())
	require.Len(t, plan.Days, 3)

	plan = Generate(UserProfile{Goal: GoalStayHealthy, DaysPerWeek: 12}, catalog.SeedEntries())
	require.Len(t, plan.Days, 7)
	// An unmapped day count cycles the fallback full-body templates.
	require.Equal(t, "Day 4: Full Body A", plan.Days[3].Label)
}

func TestGenerateSeniorBucketAndSetReduction(t *testing.T) {
	profile := UserProfile{
		Age:             55,
		Gender:          "Female",
		Goal:            GoalGainMuscle,
		ExperienceLevel: ExperienceIntermediate,
		DaysPerWeek:     6,
	}

	plan := Generate(profile, catalog.SeedEntries())

	// Senior bucket overrides gender; senior push day has no dumbbell flyes.
	for _, ex := range plan.Days[0].Exercises {
		require.NotContains(t, strings.ToLower(ex.Name), "flyes")
		// Goal says 3 sets on push/pull/legs days, senior reduction takes
		// one away (floored at 2).
		require.Equal(t, 2, ex.Sets)
	}
}

func TestGenerateRepRangeOverrides(t *testing.T) {
	profile := UserProfile{
		Age:             30,
		Gender:          "Male",
		Goal:            GoalGainStrength,
		ExperienceLevel: ExperienceAdvanced,
		DaysPerWeek:     3,
	}

	plan := Generate(profile, catalog.SeedEntries())

	var sawCalf, sawPlank bool
	for _, day := range plan.Days {
		for _, ex := range day.Exercises {
			lower := strings.ToLower(ex.Name)
			switch {
			case strings.Contains(lower, "plank"):
				sawPlank = true
				// Planks keep the template's duration value in seconds.
				require.Contains(t, []string{"30", "45", "60"}, ex.RepRange)
			case strings.Contains(lower, "calf"), strings.Contains(lower, "crunch"):
				sawCalf = true
				require.Equal(t, "12-15", ex.RepRange)
			default:
				require.Equal(t, "2-5", ex.RepRange)
			}
		}
	}
	require.True(t, sawCalf)
	require.True(t, sawPlank)
}

func TestGenerateCardioRecommendation(t *testing.T) {
	plan := Generate(UserProfile{Goal: GoalLoseWeight, DaysPerWeek: 3}, catalog.SeedEntries())
	require.True(t, plan.CardioRecommended)

	plan = Generate(UserProfile{Goal: GoalGainMuscle, DaysPerWeek: 3}, catalog.SeedEntries())
	require.False(t, plan.CardioRecommended)
}

func TestGenerateSynthesizesPlaceholdersOnEmptyCatalog(t *testing.T) {
	profile := UserProfile{
		Age:             25,
		Gender:          "Male",
		Goal:            GoalGainMuscle,
		ExperienceLevel: ExperienceNovice,
		DaysPerWeek:     3,
	}

	plan := Generate(profile, nil)

	require.Len(t, plan.Days, 3)
	for _, day := range plan.Days {
		require.NotEmpty(t, day.Exercises)
		for _, ex := range day.Exercises {
			require.True(t, ex.Placeholder)
			require.Empty(t, ex.CatalogID)
			require.NotEmpty(t, ex.BodyPart)
			require.NotEmpty(t, ex.Equipment)
		}
	}
}

func TestSynthesizePlaceholderKeywordRules(t *testing.T) {
	squat := synthesizePlaceholder("Hack squat")
	require.Equal(t, "upper legs", squat.BodyPart)
	require.Equal(t, "quads", squat.Target)
	require.True(t, squat.Placeholder)

	unknown := synthesizePlaceholder("Mystery movement")
	require.Equal(t, "full body", unknown.BodyPart)
	require.Equal(t, "general", unknown.Target)
	require.Equal(t, "body weight", unknown.Equipment)
}

func TestResolveSlotTriesAlternativeSpellings(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "1", Name: "cable face pull", BodyPart: "shoulders", Target: "delts", Equipment: "cable"},
	}

	ex := resolveSlot(Slot{Exercise: "Face pulls"}, entries)
	require.False(t, ex.Placeholder)
	require.Equal(t, "cable face pull", ex.Name)
	require.Equal(t, "1", ex.CatalogID)
}

func TestBuildRecommendationComposesFragments(t *testing.T) {
	rec := buildRecommendation(UserProfile{
		Age:             55,
		Gender:          "Female",
		Goal:            GoalGainStrength,
		ExperienceLevel: ExperienceAdvanced,
	})
	require.Contains(t, rec, goalNotes[GoalGainStrength])
	require.Contains(t, rec, experienceNotes[ExperienceAdvanced])
	require.Contains(t, rec, "Warm up thoroughly")
	require.Contains(t, rec, genderNotes["female"])

	// Unknown goal and experience fall back to the safe defaults.
	fallback := buildRecommendation(UserProfile{Age: 30})
	require.Contains(t, fallback, goalNotes[GoalStayHealthy])
	require.Contains(t, fallback, experienceNotes[ExperienceNovice])
}
