package planner

// Training goals.
const (
	GoalGainMuscle   = "Gain muscle"
	GoalGainStrength = "Gain strength"
	GoalLoseWeight   = "Lose weight"
	GoalStayHealthy  = "Stay healthy"
)

// Experience levels.
const (
	ExperienceNovice       = "Novice"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

// Template categories. Upper, lower and full-body days always run 2 sets per
// exercise; push/pull/legs days use the goal-specific count.
const (
	CategoryFullBody = "full_body"
	CategoryUpper    = "upper"
	CategoryLower    = "lower"
	CategoryPush     = "push"
	CategoryPull     = "pull"
	CategoryLegs     = "legs"
)

// seniorAge is the cutoff above which the senior slot bucket and set
// reduction apply, overriding the gender bucket.
const seniorAge = 50

const (
	maxSetsPerExercise = 3
	defaultRestSeconds = 90
	defaultRepRange    = "8-12"

	// Calf and crunch movements respond better to higher reps regardless of
	// goal.
	highRepRange = "12-15"
)

var restSecondsByGoal = map[string]int{
	GoalGainMuscle:   90,
	GoalGainStrength: 180,
	GoalLoseWeight:   60,
	GoalStayHealthy:  75,
}

var repRangeByGoal = map[string]map[string]string{
	GoalGainStrength: {
		ExperienceNovice:       "4-6",
		ExperienceIntermediate: "3-5",
		ExperienceAdvanced:     "2-5",
	},
	GoalGainMuscle: {
		ExperienceNovice:       "8-12",
		ExperienceIntermediate: "8-12",
		ExperienceAdvanced:     "6-10",
	},
	GoalLoseWeight: {
		ExperienceNovice:       "12-15",
		ExperienceIntermediate: "12-15",
		ExperienceAdvanced:     "10-15",
	},
	GoalStayHealthy: {
		ExperienceNovice:       "10-12",
		ExperienceIntermediate: "10-12",
		ExperienceAdvanced:     "8-12",
	},
}

var cardioRecommendedByGoal = map[string]bool{
	GoalLoseWeight:  true,
	GoalStayHealthy: true,
}

// pushPullLegsSetsByGoal drives set counts on push/pull/legs days only.
var pushPullLegsSetsByGoal = map[string]int{
	GoalGainMuscle:   3,
	GoalGainStrength: 3,
	GoalLoseWeight:   2,
	GoalStayHealthy:  2,
}

func restSeconds(goal string) int {
	if rest, ok := restSecondsByGoal[goal]; ok {
		return rest
	}
	return defaultRestSeconds
}

func repRange(goal, experience string) string {
	if byExperience, ok := repRangeByGoal[goal]; ok {
		if rng, ok := byExperience[experience]; ok {
			return rng
		}
	}
	return defaultRepRange
}

func setsFor(goal, category string) int {
	switch category {
	case CategoryPush, CategoryPull, CategoryLegs:
		if sets, ok := pushPullLegsSetsByGoal[goal]; ok {
			return capSets(sets)
		}
		return 2
	default:
		return 2
	}
}

func capSets(sets int) int {
	if sets > maxSetsPerExercise {
		return maxSetsPerExercise
	}
	return sets
}

// Recommendation fragments. The final recommendation is the plain
// concatenation of one fragment from each table.
var goalNotes = map[string]string{
	GoalGainMuscle:   "Progressive overload is the priority: add weight or reps whenever the top of the range feels easy.",
	GoalGainStrength: "Keep loads heavy and rest long between sets; bar speed matters more than fatigue.",
	GoalLoseWeight:   "Keep rest periods short and stay active between sets to hold intensity up.",
	GoalStayHealthy:  "Consistency beats intensity: aim to complete every scheduled session.",
}

var experienceNotes = map[string]string{
	ExperienceNovice:       "As a novice, focus on learning movement technique before chasing numbers.",
	ExperienceIntermediate: "At the intermediate level, track your lifts and push close to failure on the last set.",
	ExperienceAdvanced:     "As an advanced lifter, rotate exercise variations periodically to keep progressing.",
}

var genderNotes = map[string]string{
	"male":   "Do not neglect lower-body and core work in favour of pressing movements.",
	"female": "Heavier compound lifts will build strength without bulk; do not shy away from them.",
}

func ageNote(age int) string {
	switch {
	case age >= seniorAge:
		return "Warm up thoroughly and favour controlled tempo over maximal loads."
	case age < 18:
		return "Prioritise technique with moderate loads while still growing."
	default:
		return "Recovery drives progress: sleep and nutrition carry half the result."
	}
}

func genderNote(gender string) string {
	if note, ok := genderNotes[normalizeGender(gender)]; ok {
		return note
	}
	return genderNotes["male"]
}
