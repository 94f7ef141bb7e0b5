package matcher

// Curated lookup tables. Template names come from our split templates; the
// catalog's naming is inconsistent enough that the high-traffic names are
// pinned here rather than left to the heuristics.

// curatedNames maps a lowercased template name to the canonical catalog name.
var curatedNames = map[string]string{
	"barbell bench press":     "barbell bench press",
	"incline bench press":     "barbell incline bench press",
	"dumbbell bench press":    "dumbbell bench press",
	"dumbbell flyes":          "dumbbell fly",
	"squat":                   "barbell full squat",
	"barbell squat":           "barbell full squat",
	"deadlift":                "barbell deadlift",
	"romanian deadlift":       "barbell romanian deadlift",
	"lat pulldown":            "cable pulldown",
	"seated cable row":        "cable seated row",
	"bent over row":           "barbell bent over row",
	"overhead press":          "barbell standing overhead press",
	"shoulder press":          "dumbbell shoulder press",
	"lateral raises":          "dumbbell lateral raise",
	"bicep curls":             "dumbbell biceps curl",
	"tricep pushdown":         "cable pushdown",
	"tricep dips":             "triceps dip",
	"leg curls":               "lever seated leg curl",
	"leg extensions":          "lever leg extension",
	"calf raises":             "standing calf raise",
	"hip thrust":              "barbell hip thrust",
	"crunches":                "crunch floor",
	"lunges":                  "lunge",
	"pull-ups":                "pull up",
	"treadmill run":           "treadmill running",
}

// fallbackNames lists alternative catalog spellings tried in order when the
// curated and exact tiers miss.
var fallbackNames = map[string][]string{
	"lat pulldown":      {"cable lat pulldown", "cable pulldown", "lever lat pulldown"},
	"leg press":         {"sled 45° leg press", "lever leg press", "leg press"},
	"chest press":       {"lever chest press", "machine chest press", "barbell bench press"},
	"hamstring curls":   {"lever lying leg curl", "lever seated leg curl"},
	"shoulder press":    {"dumbbell seated shoulder press", "dumbbell shoulder press", "lever shoulder press"},
	"cable crossover":   {"cable cross-over variation", "cable crossover", "cable fly"},
	"hip abduction":     {"lever seated hip abduction", "cable hip abduction"},
	"face pulls":        {"cable face pull", "band face pull"},
	"good mornings":     {"barbell good morning", "good morning"},
	"back extension":    {"hyperextension", "45° hyperextension"},
}

// equipmentPrefixes are tokens stripped off the front of a template name to
// recover the core movement phrase for equipment-variant probing.
var equipmentPrefixes = []string{"barbell", "dumbbell", "machine", "cable", "assisted", "smith"}

// equipmentKeywords is the fixed probe order over catalog equipment fields.
var equipmentKeywords = []string{
	"barbell",
	"dumbbell",
	"cable",
	"leverage machine",
	"smith machine",
	"sled machine",
	"assisted",
	"body weight",
	"band",
	"kettlebell",
}

// muscleKeywords is the fixed token set matched against template names for
// the body-part/target fallback tier.
var muscleKeywords = []string{
	"hamstring",
	"quadricep",
	"shoulder",
	"tricep",
	"bicep",
	"chest",
	"glute",
	"calf",
	"quad",
	"lats",
	"back",
	"core",
	"abs",
	"delt",
	"trap",
	"forearm",
}

// primaryBodyParts maps template-name keywords to a coarse catalog body part,
// checked in order for the last-resort tier.
var primaryBodyParts = []struct {
	keyword  string
	bodyPart string
}{
	{"bench", "chest"},
	{"chest", "chest"},
	{"fly", "chest"},
	{"row", "back"},
	{"pull", "back"},
	{"lat", "back"},
	{"shoulder", "shoulders"},
	{"press", "shoulders"},
	{"raise", "shoulders"},
	{"curl", "upper arms"},
	{"tricep", "upper arms"},
	{"dip", "upper arms"},
	{"squat", "upper legs"},
	{"lunge", "upper legs"},
	{"deadlift", "upper legs"},
	{"leg", "upper legs"},
	{"glute", "upper legs"},
	{"calf", "lower legs"},
	{"crunch", "waist"},
	{"plank", "waist"},
	{"ab", "waist"},
	{"run", "cardio"},
	{"bike", "cardio"},
}
