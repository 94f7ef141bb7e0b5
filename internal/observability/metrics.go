// Package observability registers Prometheus metrics for the gamification
// service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	evaluationCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gamification_service",
		Subsystem: "achievements",
		Name:      "evaluations_total",
		Help:      "Number of full achievement evaluations executed.",
	})

	unlockCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gamification_service",
		Subsystem: "achievements",
		Name:      "unlocked_total",
		Help:      "Number of achievements newly unlocked, grouped by category.",
	}, []string{"category"})

	lastUnlockGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gamification_service",
		Subsystem: "achievements",
		Name:      "last_unlock_timestamp_seconds",
		Help:      "Unix timestamp of the most recent achievement unlock.",
	})

	coinsCreditedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gamification_service",
		Subsystem: "coins",
		Name:      "credited_total",
		Help:      "Total coins credited, boost multipliers included.",
	})

	plansCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gamification_service",
		Subsystem: "planner",
		Name:      "plans_generated_total",
		Help:      "Number of workout plans generated.",
	})

	matcherTierCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gamification_service",
		Subsystem: "matcher",
		Name:      "resolutions_total",
		Help:      "Exercise name resolutions grouped by winning tier.",
	}, []string{"tier"})
)

func init() {
	prometheus.MustRegister(
		evaluationCounter,
		unlockCounter,
		lastUnlockGauge,
		coinsCreditedCounter,
		plansCounter,
		matcherTierCounter,
	)
}

// RecordEvaluation counts one completed evaluation run.
func RecordEvaluation() {
	evaluationCounter.Inc()
}

// RecordAchievementUnlocked counts an unlock and moves the watermark.
func RecordAchievementUnlocked(category string, ts time.Time) {
	unlockCounter.WithLabelValues(category).Inc()
	if !ts.IsZero() {
		lastUnlockGauge.Set(float64(ts.Unix()))
	}
}

// RecordCoinsCredited adds the credited amount to the running total.
func RecordCoinsCredited(amount int) {
	if amount > 0 {
		coinsCreditedCounter.Add(float64(amount))
	}
}

// RecordPlanGenerated counts one generated plan.
func RecordPlanGenerated() {
	plansCounter.Inc()
}

// RecordMatchTier counts a resolution by the tier that produced it. The
// "none" tier marks an unresolved name.
func RecordMatchTier(tier string) {
	if tier == "" {
		tier = "none"
	}
	matcherTierCounter.WithLabelValues(tier).Inc()
}
