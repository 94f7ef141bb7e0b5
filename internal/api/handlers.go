// Package api exposes HTTP handlers for the gamification service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"example.com/gamification/internal/achievement"
	"example.com/gamification/internal/auth"
	"example.com/gamification/internal/catalog"
	"example.com/gamification/internal/coins"
	"example.com/gamification/internal/planner"
)

// CatalogSource supplies exercise catalog entries for plan generation.
type CatalogSource interface {
	Entries(ctx context.Context) ([]catalog.Entry, error)
}

// Handler coordinates HTTP requests with the gamification components.
type Handler struct {
	engine  *achievement.Engine
	ledger  *coins.Ledger
	plans   planner.PlanStore
	catalog CatalogSource
}

// NewHandler builds a Handler.
func NewHandler(engine *achievement.Engine, ledger *coins.Ledger, plans planner.PlanStore, source CatalogSource) *Handler {
	return &Handler{engine: engine, ledger: ledger, plans: plans, catalog: source}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/achievements/", h.achievements)
	mux.HandleFunc("/v1/plans/generate", h.generatePlan)
	mux.HandleFunc("/v1/plans/", h.persistPlan)
	mux.HandleFunc("/v1/coins/", h.coins)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) achievements(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/achievements/")
	userID, action, _ := strings.Cut(rest, "/")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing user id")
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.listProgress(w, r, userID)
	case action == "stats" && r.Method == http.MethodGet:
		h.achievementStats(w, r, userID)
	case action == "evaluate" && r.Method == http.MethodPost:
		h.evaluate(w, r, userID)
	case action == "initialize" && r.Method == http.MethodPost:
		h.initialize(w, r, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listProgress(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeRead) {
		return
	}

	records, err := h.engine.Progress(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ProgressResponse{UserID: userID, Records: records})
}

func (h *Handler) achievementStats(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeRead) {
		return
	}

	stats, err := h.engine.StatsFor(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	unlocked, err := h.engine.EvaluateAll(r.Context(), userID)
	if err != nil && len(unlocked) == 0 {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	coinsAwarded := 0
	if reward := achievement.CoinRewardFor(unlocked); reward > 0 {
		credited, creditErr := h.ledger.AddCoins(r.Context(), userID, reward)
		if creditErr != nil {
			writeError(w, http.StatusInternalServerError, "server_error", creditErr.Error())
			return
		}
		coinsAwarded = credited
	}

	resp := EvaluateResponse{
		UserID:        userID,
		NewlyUnlocked: unlocked,
		CoinsAwarded:  coinsAwarded,
	}
	if resp.NewlyUnlocked == nil {
		resp.NewlyUnlocked = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) initialize(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	if err := h.engine.Initialize(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"user_id": userID, "status": "initialized"})
}

func (h *Handler) generatePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	profile, ok := decodeProfile(w, r)
	if !ok {
		return
	}

	entries, err := h.catalog.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalog_unavailable", err.Error())
		return
	}

	plan := planner.Generate(profile, entries)
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) persistPlan(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimPrefix(r.URL.Path, "/v1/plans/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing user id")
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	profile, ok := decodeProfile(w, r)
	if !ok {
		return
	}

	entries, err := h.catalog.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalog_unavailable", err.Error())
		return
	}

	plan := planner.Generate(profile, entries)
	workoutIDs, err := h.plans.SavePlan(r.Context(), userID, plan)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, PersistPlanResponse{
		UserID:     userID,
		WorkoutIDs: workoutIDs,
		Plan:       plan,
	})
}

func (h *Handler) coins(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/coins/")
	userID, action, _ := strings.Cut(rest, "/")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing user id")
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.balance(w, r, userID)
	case action == "add" && r.Method == http.MethodPost:
		h.addCoins(w, r, userID)
	case action == "spend" && r.Method == http.MethodPost:
		h.spendCoins(w, r, userID)
	case action == "boost" && r.Method == http.MethodPost:
		h.activateBoost(w, r, userID)
	case action == "streak-saver" && r.Method == http.MethodPost:
		h.addStreakSaver(w, r, userID)
	case action == "streak-saver/activate" && r.Method == http.MethodPost:
		h.activateStreakSaver(w, r, userID)
	case action == "streak-protection" && r.Method == http.MethodGet:
		h.streakProtection(w, r, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeRead) {
		return
	}

	balance, err := h.ledger.Balance(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Balance: balance})
}

func (h *Handler) addCoins(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	credited, err := h.ledger.AddCoins(r.Context(), userID, amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	balance, err := h.ledger.Balance(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MutationResponse{UserID: userID, Amount: credited, Balance: balance})
}

func (h *Handler) spendCoins(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	spent, err := h.ledger.SubtractCoins(r.Context(), userID, amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	if !spent {
		writeError(w, http.StatusConflict, "insufficient_balance", "balance too low")
		return
	}

	balance, err := h.ledger.Balance(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MutationResponse{UserID: userID, Amount: amount, Balance: balance})
}

func (h *Handler) activateBoost(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	boost, err := h.ledger.ActivateDoubleCoinBoost(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, boost)
}

func (h *Handler) addStreakSaver(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	if err := h.ledger.AddStreakSaver(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"user_id": userID, "status": "purchased"})
}

func (h *Handler) activateStreakSaver(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeWrite) {
		return
	}

	activated, err := h.ledger.ActivateStreakSaver(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	if !activated {
		writeError(w, http.StatusConflict, "no_unused_saver", "no unused streak saver to activate")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"user_id": userID, "status": "activated"})
}

func (h *Handler) streakProtection(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireScope(w, r, auth.ScopeRead) {
		return
	}

	remaining, err := h.ledger.ProtectionTimeRemaining(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ProtectionResponse{
		UserID:           userID,
		Active:           remaining > 0,
		RemainingSeconds: int64(remaining / time.Second),
	})
}

// requireScope verifies the request carries claims with the needed scope. The
// write scope implies read.
func requireScope(w http.ResponseWriter, r *http.Request, scope string) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if claims.HasScope(scope) || (scope == auth.ScopeRead && claims.HasScope(auth.ScopeWrite)) {
		return true
	}
	writeError(w, http.StatusForbidden, "forbidden", "scope "+scope+" required")
	return false
}

func decodeProfile(w http.ResponseWriter, r *http.Request) (planner.UserProfile, bool) {
	var profile planner.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return planner.UserProfile{}, false
	}
	if err := validateProfile(profile); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return planner.UserProfile{}, false
	}
	return profile, true
}

func validateProfile(profile planner.UserProfile) error {
	if profile.Age < 0 {
		return errors.New("age must be >= 0")
	}
	if profile.DaysPerWeek < 0 || profile.DaysPerWeek > 7 {
		return errors.New("days_per_week must be between 0 and 7")
	}
	return nil
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return 0, false
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "amount must be > 0")
		return 0, false
	}
	return req.Amount, true
}

// AmountRequest is the payload for coin mutations.
type AmountRequest struct {
	Amount int `json:"amount"`
}

// ProgressResponse packages a user's progress records.
type ProgressResponse struct {
	UserID  string                       `json:"user_id"`
	Records []achievement.ProgressRecord `json:"records"`
}

// EvaluateResponse describes the outcome of an evaluation run.
type EvaluateResponse struct {
	UserID        string   `json:"user_id"`
	NewlyUnlocked []string `json:"newly_unlocked"`
	CoinsAwarded  int      `json:"coins_awarded"`
}

// PersistPlanResponse returns the stored workout IDs alongside the plan.
type PersistPlanResponse struct {
	UserID     string                `json:"user_id"`
	WorkoutIDs []string              `json:"workout_ids"`
	Plan       planner.GeneratedPlan `json:"plan"`
}

// BalanceResponse reports a coin balance.
type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}

// MutationResponse reports the applied amount and resulting balance.
type MutationResponse struct {
	UserID  string `json:"user_id"`
	Amount  int    `json:"amount"`
	Balance int    `json:"balance"`
}

// ProtectionResponse reports streak protection state.
type ProtectionResponse struct {
	UserID           string `json:"user_id"`
	Active           bool   `json:"active"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
