// Package achievement evaluates gamification milestones from user metrics.
package achievement

import "example.com/gamification/internal/metrics"

// Achievement categories.
const (
	CategoryWorkouts    = "workouts"
	CategoryVolume      = "volume"
	CategoryConsistency = "consistency"
	CategoryVariety     = "variety"
	CategoryStrength    = "strength"
	CategorySocial      = "social"
	CategoryMeta        = "meta"
)

// ProgressFunc maps a metrics snapshot to a 0..100 progress value.
type ProgressFunc func(m metrics.UserMetrics) float64

// Definition is one static, immutable achievement rule.
type Definition struct {
	ID         string
	Category   string
	CoinReward int
	Progress   ProgressFunc
}

// ratio returns value/target as a percentage clamped to 0..100.
func ratio(value, target float64) float64 {
	if target <= 0 || value <= 0 {
		return 0
	}
	p := value / target * 100
	if p > 100 {
		return 100
	}
	return p
}

// gate returns 100 for a reached milestone, otherwise 0.
func gate(reached bool) float64 {
	if reached {
		return 100
	}
	return 0
}

// zero is the progress function for achievements whose driving data is not
// tracked yet. They stay at 0 on purpose until the data lands; do not remove
// them, the IDs are already seeded for existing users.
func zero(metrics.UserMetrics) float64 { return 0 }

func countTarget(value func(m metrics.UserMetrics) int, target float64) ProgressFunc {
	return func(m metrics.UserMetrics) float64 {
		return ratio(float64(value(m)), target)
	}
}

var (
	workouts  = func(m metrics.UserMetrics) int { return m.TotalWorkouts }
	minutes   = func(m metrics.UserMetrics) int { return m.TotalMinutes }
	streak    = func(m metrics.UserMetrics) int { return m.CurrentStreak }
	exercises = func(m metrics.UserMetrics) int { return m.UniqueExercises }
	records   = func(m metrics.UserMetrics) int { return m.PersonalRecords }
	templates = func(m metrics.UserMetrics) int { return m.TemplatesCreated }
	earlyBird = func(m metrics.UserMetrics) int { return m.EarlyBirdWorkouts }
	nightOwl  = func(m metrics.UserMetrics) int { return m.NightOwlWorkouts }
	weekend   = func(m metrics.UserMetrics) int { return m.WeekendWorkouts }
	posts     = func(m metrics.UserMetrics) int { return m.TotalPosts }
	comments  = func(m metrics.UserMetrics) int { return m.TotalComments }
	stories   = func(m metrics.UserMetrics) int { return m.TotalStories }
	followers = func(m metrics.UserMetrics) int { return m.Followers }
	following = func(m metrics.UserMetrics) int { return m.Following }
	postLikes = func(m metrics.UserMetrics) int { return m.MaxPostLikes }
	reactions = func(m metrics.UserMetrics) int { return m.Reactions }
	emojis    = func(m metrics.UserMetrics) int { return m.EmojiComments }
	completed = func(m metrics.UserMetrics) int { return m.CompletedAchievements }
)

var definitions = []Definition{
	// Workout counts.
	{ID: "first_workout", Category: CategoryWorkouts, CoinReward: 25, Progress: countTarget(workouts, 1)},
	{ID: "workouts_10", Category: CategoryWorkouts, CoinReward: 50, Progress: countTarget(workouts, 10)},
	{ID: "workouts_25", Category: CategoryWorkouts, CoinReward: 75, Progress: countTarget(workouts, 25)},
	{ID: "workouts_50", Category: CategoryWorkouts, CoinReward: 100, Progress: countTarget(workouts, 50)},
	{ID: "workouts_100", Category: CategoryWorkouts, CoinReward: 200, Progress: countTarget(workouts, 100)},
	{ID: "workouts_250", Category: CategoryWorkouts, CoinReward: 500, Progress: countTarget(workouts, 250)},

	// Cumulative volume (reps x weight).
	{ID: "volume_10k", Category: CategoryVolume, CoinReward: 50, Progress: func(m metrics.UserMetrics) float64 { return ratio(m.TotalVolume, 10_000) }},
	{ID: "volume_100k", Category: CategoryVolume, CoinReward: 100, Progress: func(m metrics.UserMetrics) float64 { return ratio(m.TotalVolume, 100_000) }},
	{ID: "volume_500k", Category: CategoryVolume, CoinReward: 250, Progress: func(m metrics.UserMetrics) float64 { return ratio(m.TotalVolume, 500_000) }},
	{ID: "volume_1m", Category: CategoryVolume, CoinReward: 500, Progress: func(m metrics.UserMetrics) float64 { return ratio(m.TotalVolume, 1_000_000) }},

	// Cumulative training time.
	{ID: "minutes_500", Category: CategoryWorkouts, CoinReward: 50, Progress: countTarget(minutes, 500)},
	{ID: "minutes_1000", Category: CategoryWorkouts, CoinReward: 100, Progress: countTarget(minutes, 1000)},
	{ID: "minutes_5000", Category: CategoryWorkouts, CoinReward: 300, Progress: countTarget(minutes, 5000)},

	// Streaks.
	{ID: "streak_3", Category: CategoryConsistency, CoinReward: 30, Progress: countTarget(streak, 3)},
	{ID: "streak_7", Category: CategoryConsistency, CoinReward: 70, Progress: countTarget(streak, 7)},
	{ID: "streak_14", Category: CategoryConsistency, CoinReward: 140, Progress: countTarget(streak, 14)},
	{ID: "streak_30", Category: CategoryConsistency, CoinReward: 300, Progress: countTarget(streak, 30)},
	{ID: "streak_100", Category: CategoryConsistency, CoinReward: 1000, Progress: countTarget(streak, 100)},

	// Exercise variety.
	{ID: "explorer_5", Category: CategoryVariety, CoinReward: 25, Progress: countTarget(exercises, 5)},
	{ID: "explorer_15", Category: CategoryVariety, CoinReward: 75, Progress: countTarget(exercises, 15)},
	{ID: "explorer_30", Category: CategoryVariety, CoinReward: 150, Progress: countTarget(exercises, 30)},

	// Personal records.
	{ID: "first_pr", Category: CategoryStrength, CoinReward: 25, Progress: countTarget(records, 1)},
	{ID: "pr_10", Category: CategoryStrength, CoinReward: 100, Progress: countTarget(records, 10)},
	{ID: "pr_25", Category: CategoryStrength, CoinReward: 250, Progress: countTarget(records, 25)},

	// Workout templates.
	{ID: "first_template", Category: CategoryWorkouts, CoinReward: 20, Progress: countTarget(templates, 1)},
	{ID: "templates_5", Category: CategoryWorkouts, CoinReward: 60, Progress: countTarget(templates, 5)},

	// Time-of-day habits.
	{ID: "early_bird_10", Category: CategoryConsistency, CoinReward: 80, Progress: countTarget(earlyBird, 10)},
	{ID: "night_owl_10", Category: CategoryConsistency, CoinReward: 80, Progress: countTarget(nightOwl, 10)},
	{ID: "weekend_warrior_10", Category: CategoryConsistency, CoinReward: 80, Progress: countTarget(weekend, 10)},
	{ID: "weekend_warrior_50", Category: CategoryConsistency, CoinReward: 250, Progress: countTarget(weekend, 50)},

	// Social.
	{ID: "first_post", Category: CategorySocial, CoinReward: 15, Progress: countTarget(posts, 1)},
	{ID: "posts_10", Category: CategorySocial, CoinReward: 50, Progress: countTarget(posts, 10)},
	{ID: "posts_50", Category: CategorySocial, CoinReward: 150, Progress: countTarget(posts, 50)},
	{ID: "comments_25", Category: CategorySocial, CoinReward: 50, Progress: countTarget(comments, 25)},
	{ID: "comments_100", Category: CategorySocial, CoinReward: 120, Progress: countTarget(comments, 100)},
	{ID: "stories_10", Category: CategorySocial, CoinReward: 40, Progress: countTarget(stories, 10)},
	{ID: "followers_10", Category: CategorySocial, CoinReward: 30, Progress: countTarget(followers, 10)},
	{ID: "followers_100", Category: CategorySocial, CoinReward: 120, Progress: countTarget(followers, 100)},
	{ID: "followers_1000", Category: CategorySocial, CoinReward: 500, Progress: countTarget(followers, 1000)},
	{ID: "following_50", Category: CategorySocial, CoinReward: 40, Progress: countTarget(following, 50)},
	{ID: "post_likes_10", Category: CategorySocial, CoinReward: 30, Progress: countTarget(postLikes, 10)},
	{ID: "post_likes_50", Category: CategorySocial, CoinReward: 100, Progress: countTarget(postLikes, 50)},
	{ID: "reactions_100", Category: CategorySocial, CoinReward: 80, Progress: countTarget(reactions, 100)},
	{ID: "emoji_comments_25", Category: CategorySocial, CoinReward: 50, Progress: countTarget(emojis, 25)},

	// Meta.
	{ID: "achiever_10", Category: CategoryMeta, CoinReward: 100, Progress: countTarget(completed, 10)},
	{ID: "achiever_25", Category: CategoryMeta, CoinReward: 300, Progress: countTarget(completed, 25)},
	{ID: "advanced_athlete", Category: CategoryMeta, CoinReward: 200, Progress: func(m metrics.UserMetrics) float64 { return gate(m.IsAdvanced) }},

	// Pending data sources: goal tracking and location-tagged posts are not
	// modeled yet, so these stay at 0.
	{ID: "goal_setter", Category: CategoryMeta, CoinReward: 30, Progress: zero},
	{ID: "goal_crusher", Category: CategoryMeta, CoinReward: 150, Progress: zero},
	{ID: "globetrotter", Category: CategorySocial, CoinReward: 100, Progress: zero},
}

// Catalog returns the static achievement definitions.
func Catalog() []Definition {
	return definitions
}

// Lookup returns the definition for id, if present.
func Lookup(id string) (Definition, bool) {
	for _, def := range definitions {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
