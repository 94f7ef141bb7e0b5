// Package catalog provides access to the third-party exercise catalog.
package catalog

import "context"

// Entry represents one exercise in the external catalog.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BodyPart  string `json:"bodyPart"`
	Target    string `json:"target"`
	Equipment string `json:"equipment"`
	GifURL    string `json:"gifUrl,omitempty"`
}

// Provider exposes the catalog query surface.
type Provider interface {
	Entries(ctx context.Context) ([]Entry, error)
}

// Static serves a fixed entry list, used for local development and tests.
type Static struct {
	entries []Entry
}

// NewStatic constructs a Static provider over the supplied entries.
func NewStatic(entries []Entry) *Static {
	return &Static{entries: entries}
}

// Entries returns a copy of the fixed entry list.
func (s *Static) Entries(ctx context.Context) ([]Entry, error) {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// SeedEntries is a small built-in catalog for running without an upstream.
func SeedEntries() []Entry {
	return []Entry{
		{ID: "0025", Name: "barbell bench press", BodyPart: "chest", Target: "pectorals", Equipment: "barbell"},
		{ID: "0033", Name: "barbell incline bench press", BodyPart: "chest", Target: "pectorals", Equipment: "barbell"},
		{ID: "0289", Name: "dumbbell bench press", BodyPart: "chest", Target: "pectorals", Equipment: "dumbbell"},
		{ID: "0308", Name: "dumbbell fly", BodyPart: "chest", Target: "pectorals", Equipment: "dumbbell"},
		{ID: "0043", Name: "barbell full squat", BodyPart: "upper legs", Target: "glutes", Equipment: "barbell"},
		{ID: "0585", Name: "leg press", BodyPart: "upper legs", Target: "quads", Equipment: "sled machine"},
		{ID: "0032", Name: "barbell deadlift", BodyPart: "upper legs", Target: "glutes", Equipment: "barbell"},
		{ID: "0122", Name: "barbell romanian deadlift", BodyPart: "upper legs", Target: "hamstrings", Equipment: "barbell"},
		{ID: "0586", Name: "lever seated leg curl", BodyPart: "upper legs", Target: "hamstrings", Equipment: "leverage machine"},
		{ID: "0592", Name: "lever leg extension", BodyPart: "upper legs", Target: "quads", Equipment: "leverage machine"},
		{ID: "1380", Name: "smith calf raise", BodyPart: "lower legs", Target: "calves", Equipment: "smith machine"},
		{ID: "1373", Name: "standing calf raise", BodyPart: "lower legs", Target: "calves", Equipment: "body weight"},
		{ID: "0652", Name: "cable pulldown", BodyPart: "back", Target: "lats", Equipment: "cable"},
		{ID: "0160", Name: "cable seated row", BodyPart: "back", Target: "upper back", Equipment: "cable"},
		{ID: "0027", Name: "barbell bent over row", BodyPart: "back", Target: "upper back", Equipment: "barbell"},
		{ID: "0448", Name: "pull up", BodyPart: "back", Target: "lats", Equipment: "body weight"},
		{ID: "0009", Name: "assisted pull-up", BodyPart: "back", Target: "lats", Equipment: "assisted"},
		{ID: "0405", Name: "dumbbell shoulder press", BodyPart: "shoulders", Target: "delts", Equipment: "dumbbell"},
		{ID: "0178", Name: "barbell standing overhead press", BodyPart: "shoulders", Target: "delts", Equipment: "barbell"},
		{ID: "0334", Name: "dumbbell lateral raise", BodyPart: "shoulders", Target: "delts", Equipment: "dumbbell"},
		{ID: "0294", Name: "dumbbell biceps curl", BodyPart: "upper arms", Target: "biceps", Equipment: "dumbbell"},
		{ID: "0031", Name: "barbell curl", BodyPart: "upper arms", Target: "biceps", Equipment: "barbell"},
		{ID: "0241", Name: "cable pushdown", BodyPart: "upper arms", Target: "triceps", Equipment: "cable"},
		{ID: "0814", Name: "triceps dip", BodyPart: "upper arms", Target: "triceps", Equipment: "body weight"},
		{ID: "0001", Name: "3/4 sit-up", BodyPart: "waist", Target: "abs", Equipment: "body weight"},
		{ID: "0464", Name: "crunch floor", BodyPart: "waist", Target: "abs", Equipment: "body weight"},
		{ID: "0463", Name: "plank", BodyPart: "waist", Target: "abs", Equipment: "body weight"},
		{ID: "1368", Name: "lunge", BodyPart: "upper legs", Target: "glutes", Equipment: "body weight"},
		{ID: "0760", Name: "barbell hip thrust", BodyPart: "upper legs", Target: "glutes", Equipment: "barbell"},
		{ID: "3360", Name: "treadmill running", BodyPart: "cardio", Target: "cardiovascular system", Equipment: "treadmill"},
	}
}
