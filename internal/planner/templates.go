package planner

// Slot bucket keys. Seniors get their own exercise lists regardless of
// gender.
const (
	bucketMale   = "male"
	bucketFemale = "female"
	bucketSenior = "senior"
)

// Slot is one exercise position in a split template. Reps is only set for
// timed holds (seconds), which keep their template value during assembly.
type Slot struct {
	Exercise string
	Sets     int
	Reps     string
}

// SplitTemplate assigns a focus and per-bucket exercise list to one training
// day variant.
type SplitTemplate struct {
	Name     string
	Category string
	Focus    string
	Slots    map[string][]Slot
}

type planKey struct {
	goal string
	days int
}

var fullBodyA = SplitTemplate{
	Name:     "Full Body A",
	Category: CategoryFullBody,
	Focus:    "full body",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Barbell bench press", Sets: 3},
			{Exercise: "Squat", Sets: 3},
			{Exercise: "Bent over row", Sets: 3},
			{Exercise: "Shoulder press", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "45"},
		},
		bucketFemale: {
			{Exercise: "Squat", Sets: 3},
			{Exercise: "Hip thrust", Sets: 3},
			{Exercise: "Lat pulldown", Sets: 3},
			{Exercise: "Dumbbell bench press", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "45"},
		},
		bucketSenior: {
			{Exercise: "Leg press", Sets: 2},
			{Exercise: "Chest press", Sets: 2},
			{Exercise: "Seated cable row", Sets: 2},
			{Exercise: "Standing calf raise", Sets: 2},
		},
	},
}

var fullBodyB = SplitTemplate{
	Name:     "Full Body B",
	Category: CategoryFullBody,
	Focus:    "full body",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Deadlift", Sets: 3},
			{Exercise: "Incline bench press", Sets: 3},
			{Exercise: "Lat pulldown", Sets: 3},
			{Exercise: "Lunges", Sets: 2},
			{Exercise: "Crunches", Sets: 2},
		},
		bucketFemale: {
			{Exercise: "Romanian deadlift", Sets: 3},
			{Exercise: "Lunges", Sets: 3},
			{Exercise: "Seated cable row", Sets: 3},
			{Exercise: "Lateral raises", Sets: 2},
			{Exercise: "Crunches", Sets: 2},
		},
		bucketSenior: {
			{Exercise: "Leg extensions", Sets: 2},
			{Exercise: "Lat pulldown", Sets: 2},
			{Exercise: "Shoulder press", Sets: 2},
			{Exercise: "Crunches", Sets: 2},
		},
	},
}

var fullBodyC = SplitTemplate{
	Name:     "Full Body C",
	Category: CategoryFullBody,
	Focus:    "full body",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Squat", Sets: 3},
			{Exercise: "Pull-ups", Sets: 3},
			{Exercise: "Dumbbell bench press", Sets: 3},
			{Exercise: "Calf raises", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "60"},
		},
		bucketFemale: {
			{Exercise: "Hip thrust", Sets: 3},
			{Exercise: "Leg curls", Sets: 3},
			{Exercise: "Shoulder press", Sets: 3},
			{Exercise: "Calf raises", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "60"},
		},
		bucketSenior: {
			{Exercise: "Leg press", Sets: 2},
			{Exercise: "Seated cable row", Sets: 2},
			{Exercise: "Dumbbell bench press", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "30"},
		},
	},
}

var upperA = SplitTemplate{
	Name:     "Upper A",
	Category: CategoryUpper,
	Focus:    "upper body",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Barbell bench press", Sets: 3},
			{Exercise: "Bent over row", Sets: 3},
			{Exercise: "Overhead press", Sets: 3},
			{Exercise: "Bicep curls", Sets: 2},
			{Exercise: "Tricep pushdown", Sets: 2},
		},
		bucketFemale: {
			{Exercise: "Dumbbell bench press", Sets: 3},
			{Exercise: "Lat pulldown", Sets: 3},
			{Exercise: "Shoulder press", Sets: 3},
			{Exercise: "Lateral raises", Sets: 2},
			{Exercise: "Tricep dips", Sets: 2},
		},
		bucketSenior: {
			{Exercise: "Chest press", Sets: 2},
			{Exercise: "Seated cable row", Sets: 2},
			{Exercise: "Shoulder press", Sets: 2},
			{Exercise: "Bicep curls", Sets: 2},
		},
	},
}

var lowerA = SplitTemplate{
	Name:     "Lower A",
	Category: CategoryLower,
	Focus:    "lower body",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Squat", Sets: 3},
			{Exercise: "Romanian deadlift", Sets: 3},
			{Exercise: "Leg press", Sets: 3},
			{Exercise: "Calf raises", Sets: 2},
			{Exercise: "Crunches", Sets: 2},
		},
		bucketFemale: {
			{Exercise: "Hip thrust", Sets: 3},
			{Exercise: "Squat", Sets: 3},
			{Exercise: "Leg curls", Sets: 3},
			{Exercise: "Hip abduction", Sets: 2},
			{Exercise: "Calf raises", Sets: 2},
		},
		bucketSenior: {
			{Exercise: "Leg press", Sets: 2},
			{Exercise: "Leg curls", Sets: 2},
			{Exercise: "Standing calf raise", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "30"},
		},
	},
}

var upperB = SplitTemplate{
	Name:     "Upper B",
	Category: CategoryUpper,
	Focus:    "upper body",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Incline bench press", Sets: 3},
			{Exercise: "Pull-ups", Sets: 3},
			{Exercise: "Lateral raises", Sets: 3},
			{Exercise: "Face pulls", Sets: 2},
			{Exercise: "Tricep dips", Sets: 2},
		},
		bucketFemale: {
			{Exercise: "Incline bench press", Sets: 3},
			{Exercise: "Seated cable row", Sets: 3},
			{Exercise: "Lateral raises", Sets: 3},
			{Exercise: "Face pulls", Sets: 2},
			{Exercise: "Bicep curls", Sets: 2},
		},
		bucketSenior: {
			{Exercise: "Dumbbell bench press", Sets: 2},
			{Exercise: "Lat pulldown", Sets: 2},
			{Exercise: "Lateral raises", Sets: 2},
			{Exercise: "Tricep pushdown", Sets: 2},
		},
	},
}

var lowerB = SplitTemplate{
	Name:     "Lower B",
	Category: CategoryLower,
	Focus:    "lower body",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Deadlift", Sets: 3},
			{Exercise: "Lunges", Sets: 3},
			{Exercise: "Leg extensions", Sets: 3},
			{Exercise: "Calf raises", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "60"},
		},
		bucketFemale: {
			{Exercise: "Romanian deadlift", Sets: 3},
			{Exercise: "Lunges", Sets: 3},
			{Exercise: "Hip thrust", Sets: 3},
			{Exercise: "Calf raises", Sets: 2},
			{Exercise: "Plank", Sets: 2, Reps: "60"},
		},
		bucketSenior: {
			{Exercise: "Leg extensions", Sets: 2},
			{Exercise: "Good mornings", Sets: 2},
			{Exercise: "Standing calf raise", Sets: 2},
			{Exercise: "Crunches", Sets: 2},
		},
	},
}

var pushDay = SplitTemplate{
	Name:     "Push",
	Category: CategoryPush,
	Focus:    "chest, shoulders, triceps",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Barbell bench press", Sets: 3},
			{Exercise: "Overhead press", Sets: 3},
			{Exercise: "Incline bench press", Sets: 3},
			{Exercise: "Lateral raises", Sets: 3},
			{Exercise: "Tricep pushdown", Sets: 3},
		},
		bucketFemale: {
			{Exercise: "Dumbbell bench press", Sets: 3},
			{Exercise: "Shoulder press", Sets: 3},
			{Exercise: "Dumbbell flyes", Sets: 3},
			{Exercise: "Lateral raises", Sets: 3},
			{Exercise: "Tricep dips", Sets: 3},
		},
		bucketSenior: {
			{Exercise: "Chest press", Sets: 2},
			{Exercise: "Shoulder press", Sets: 2},
			{Exercise: "Lateral raises", Sets: 2},
			{Exercise: "Tricep pushdown", Sets: 2},
		},
	},
}

var pullDay = SplitTemplate{
	Name:     "Pull",
	Category: CategoryPull,
	Focus:    "back, biceps",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Deadlift", Sets: 3},
			{Exercise: "Pull-ups", Sets: 3},
			{Exercise: "Bent over row", Sets: 3},
			{Exercise: "Face pulls", Sets: 3},
			{Exercise: "Bicep curls", Sets: 3},
		},
		bucketFemale: {
			{Exercise: "Lat pulldown", Sets: 3},
			{Exercise: "Seated cable row", Sets: 3},
			{Exercise: "Face pulls", Sets: 3},
			{Exercise: "Back extension", Sets: 3},
			{Exercise: "Bicep curls", Sets: 3},
		},
		bucketSenior: {
			{Exercise: "Lat pulldown", Sets: 2},
			{Exercise: "Seated cable row", Sets: 2},
			{Exercise: "Face pulls", Sets: 2},
			{Exercise: "Bicep curls", Sets: 2},
		},
	},
}

var legsDay = SplitTemplate{
	Name:     "Legs",
	Category: CategoryLegs,
	Focus:    "quads, hamstrings, glutes, calves",
	Slots: map[string][]Slot{
		bucketMale: {
			{Exercise: "Squat", Sets: 3},
			{Exercise: "Romanian deadlift", Sets: 3},
			{Exercise: "Leg press", Sets: 3},
			{Exercise: "Leg curls", Sets: 3},
			{Exercise: "Calf raises", Sets: 3},
		},
		bucketFemale: {
			{Exercise: "Hip thrust", Sets: 3},
			{Exercise: "Squat", Sets: 3},
			{Exercise: "Romanian deadlift", Sets: 3},
			{Exercise: "Hip abduction", Sets: 3},
			{Exercise: "Calf raises", Sets: 3},
		},
		bucketSenior: {
			{Exercise: "Leg press", Sets: 2},
			{Exercise: "Leg curls", Sets: 2},
			{Exercise: "Leg extensions", Sets: 2},
			{Exercise: "Standing calf raise", Sets: 2},
		},
	},
}

// splitTable maps (goal, daysPerWeek) to the day-variant cycle. Missing
// combinations fall back to the three-day full-body cycle.
var splitTable = map[planKey][]SplitTemplate{
	{GoalGainMuscle, 3}:   {fullBodyA, fullBodyB, fullBodyC},
	{GoalGainMuscle, 4}:   {upperA, lowerA, upperB, lowerB},
	{GoalGainMuscle, 5}:   {pushDay, pullDay, legsDay, upperA, lowerA},
	{GoalGainMuscle, 6}:   {pushDay, pullDay, legsDay, pushDay, pullDay, legsDay},
	{GoalGainStrength, 3}: {fullBodyA, fullBodyB, fullBodyC},
	{GoalGainStrength, 4}: {upperA, lowerA, upperB, lowerB},
	{GoalGainStrength, 5}: {upperA, lowerA, upperB, lowerB, fullBodyA},
	{GoalLoseWeight, 3}:   {fullBodyA, fullBodyB, fullBodyC},
	{GoalLoseWeight, 4}:   {upperA, lowerA, upperB, lowerB},
	{GoalLoseWeight, 5}:   {fullBodyA, fullBodyB, fullBodyC, upperA, lowerA},
	{GoalStayHealthy, 3}:  {fullBodyA, fullBodyB, fullBodyC},
	{GoalStayHealthy, 4}:  {upperA, lowerA, upperB, lowerB},
}

var defaultTemplates = []SplitTemplate{fullBodyA, fullBodyB, fullBodyC}

func templatesFor(goal string, daysPerWeek int) []SplitTemplate {
	if cycle, ok := splitTable[planKey{goal, daysPerWeek}]; ok {
		return cycle
	}
	return defaultTemplates
}

// alternativeSpellings lists retry names for template exercises the matcher
// regularly misses against the external catalog.
var alternativeSpellings = map[string][]string{
	"face pulls":     {"cable face pull", "rear delt row", "band face pull"},
	"chest press":    {"lever chest press", "machine chest press", "dumbbell bench press"},
	"back extension": {"hyperextension", "45 degree hyperextension"},
	"hip abduction":  {"lever seated hip abduction", "cable hip abduction", "side lying hip abduction"},
	"good mornings":  {"barbell good morning", "good morning"},
	"hamstring curls": {"lever lying leg curl", "lever seated leg curl"},
}

// placeholderRules infer attributes for a synthesized exercise when the
// catalog resolves nothing. Checked in order, first keyword hit wins.
var placeholderRules = []struct {
	keyword   string
	bodyPart  string
	target    string
	equipment string
}{
	{"bench", "chest", "pectorals", "barbell"},
	{"chest", "chest", "pectorals", "machine"},
	{"fly", "chest", "pectorals", "dumbbell"},
	{"row", "back", "upper back", "cable"},
	{"pull", "back", "lats", "cable"},
	{"extension", "back", "spine", "body weight"},
	{"shoulder", "shoulders", "delts", "dumbbell"},
	{"raise", "shoulders", "delts", "dumbbell"},
	{"curl", "upper arms", "biceps", "dumbbell"},
	{"tricep", "upper arms", "triceps", "cable"},
	{"squat", "upper legs", "quads", "barbell"},
	{"deadlift", "upper legs", "hamstrings", "barbell"},
	{"lunge", "upper legs", "glutes", "body weight"},
	{"hip", "upper legs", "glutes", "machine"},
	{"leg", "upper legs", "quads", "machine"},
	{"calf", "lower legs", "calves", "machine"},
	{"crunch", "waist", "abs", "body weight"},
	{"plank", "waist", "abs", "body weight"},
}
