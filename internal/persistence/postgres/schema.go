package postgres

// Schema holds the DDL for the gamification tables plus the activity tables
// the aggregator reads. Applied by migrations in deployment and by the
// integration tests directly.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id          TEXT PRIMARY KEY,
    experience_level TEXT NOT NULL DEFAULT 'Novice'
);

CREATE TABLE IF NOT EXISTS workout_sessions (
    session_id   UUID PRIMARY KEY,
    user_id      TEXT NOT NULL,
    started_at   TIMESTAMPTZ NOT NULL,
    duration_min INT NOT NULL DEFAULT 0,
    completed    BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON workout_sessions (user_id, started_at DESC);

CREATE TABLE IF NOT EXISTS session_sets (
    set_id        UUID PRIMARY KEY,
    session_id    UUID NOT NULL REFERENCES workout_sessions (session_id) ON DELETE CASCADE,
    user_id       TEXT NOT NULL,
    exercise_name TEXT NOT NULL,
    reps          INT NOT NULL DEFAULT 0,
    weight        DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_session_sets_user ON session_sets (user_id);

CREATE TABLE IF NOT EXISTS personal_records (
    record_id     UUID PRIMARY KEY,
    user_id       TEXT NOT NULL,
    exercise_name TEXT NOT NULL,
    achieved_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_templates (
    template_id UUID PRIMARY KEY,
    user_id     TEXT NOT NULL,
    name        TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
    post_id    UUID PRIMARY KEY,
    user_id    TEXT NOT NULL,
    likes      INT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS comments (
    comment_id UUID PRIMARY KEY,
    user_id    TEXT NOT NULL,
    emoji_only BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS stories (
    story_id   UUID PRIMARY KEY,
    user_id    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS follows (
    follower_id TEXT NOT NULL,
    followee_id TEXT NOT NULL,
    PRIMARY KEY (follower_id, followee_id)
);

CREATE TABLE IF NOT EXISTS reactions (
    reaction_id UUID PRIMARY KEY,
    user_id     TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS progress_records (
    user_id        TEXT NOT NULL,
    achievement_id TEXT NOT NULL,
    progress       DOUBLE PRECISION NOT NULL DEFAULT 0,
    unlocked_at    TIMESTAMPTZ,
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (user_id, achievement_id)
);

CREATE TABLE IF NOT EXISTS coin_wallets (
    user_id TEXT PRIMARY KEY,
    balance INT NOT NULL DEFAULT 0 CHECK (balance >= 0)
);

CREATE TABLE IF NOT EXISTS coin_boosts (
    user_id    TEXT NOT NULL,
    boost_type TEXT NOT NULL,
    start_time TIMESTAMPTZ NOT NULL,
    end_time   TIMESTAMPTZ NOT NULL,
    multiplier INT NOT NULL,
    PRIMARY KEY (user_id, boost_type)
);

CREATE TABLE IF NOT EXISTS streak_savers (
    saver_id     UUID PRIMARY KEY,
    user_id      TEXT NOT NULL,
    purchased_at TIMESTAMPTZ NOT NULL,
    activated_at TIMESTAMPTZ,
    used         BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_streak_savers_user ON streak_savers (user_id);

CREATE TABLE IF NOT EXISTS workouts (
    workout_id UUID PRIMARY KEY,
    user_id    TEXT NOT NULL,
    label      TEXT NOT NULL,
    focus      TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_plan_sets (
    workout_id    UUID NOT NULL REFERENCES workouts (workout_id) ON DELETE CASCADE,
    set_order     INT NOT NULL,
    exercise_name TEXT NOT NULL,
    body_part     TEXT NOT NULL,
    target        TEXT NOT NULL,
    equipment     TEXT NOT NULL,
    rep_range     TEXT NOT NULL,
    rest_seconds  INT NOT NULL,
    catalog_id    TEXT,
    PRIMARY KEY (workout_id, set_order)
);
`
