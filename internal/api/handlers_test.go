package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"example.com/gamification/internal/achievement"
	"example.com/gamification/internal/auth"
	"example.com/gamification/internal/catalog"
	"example.com/gamification/internal/coins"
	"example.com/gamification/internal/memstore"
	"example.com/gamification/internal/metrics"
)

func newTestHandler(t *testing.T, activities *memstore.ActivityStore) (*Handler, *memstore.PlanStore) {
	t.Helper()
	if activities == nil {
		activities = &memstore.ActivityStore{}
	}
	progress := memstore.NewProgressStore()
	wallets := memstore.NewWalletStore()
	plans := memstore.NewPlanStore()

	engine := achievement.NewEngine(progress, metrics.NewAggregator(activities, progress))
	ledger := coins.NewLedger(wallets, func() string { return "saver-1" })
	source := catalog.NewStatic(catalog.SeedEntries())

	return NewHandler(engine, ledger, plans, source), plans
}

func authedRequest(method, target string, body string, scopes ...string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	scopeSet := make(map[string]struct{}, len(scopes))
	for _, s := range scopes {
		scopeSet[s] = struct{}{}
	}
	claims := &auth.Claims{
		Subject:   "tester",
		Scopes:    scopeSet,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestEvaluateUnlocksAndCreditsCoins(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 45},
		},
	}
	handler, _ := newTestHandler(t, activities)

	req := authedRequest(http.MethodPost, "/v1/achievements/u1/evaluate", "", auth.ScopeWrite)
	rr := serve(handler, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp EvaluateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.NewlyUnlocked) != 1 || resp.NewlyUnlocked[0] != "first_workout" {
		t.Fatalf("unexpected unlocks %v", resp.NewlyUnlocked)
	}
	if resp.CoinsAwarded != 25 {
		t.Fatalf("expected 25 coins awarded got %d", resp.CoinsAwarded)
	}

	// Balance endpoint reflects the credit.
	rr = serve(handler, authedRequest(http.MethodGet, "/v1/coins/u1", "", auth.ScopeRead))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var balance BalanceResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &balance); err != nil {
		t.Fatalf("failed to decode balance: %v", err)
	}
	if balance.Balance != 25 {
		t.Fatalf("expected balance 25 got %d", balance.Balance)
	}
}

func TestEvaluateRequiresWriteScope(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	req := authedRequest(http.MethodPost, "/v1/achievements/u1/evaluate", "", auth.ScopeRead)
	rr := serve(handler, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rr.Code)
	}
}

func TestProgressRequiresToken(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/achievements/u1", nil)
	rr := serve(handler, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestWriteScopeImpliesRead(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	req := authedRequest(http.MethodGet, "/v1/coins/u1", "", auth.ScopeWrite)
	rr := serve(handler, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestInitializeSeedsAllAchievements(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	rr := serve(handler, authedRequest(http.MethodPost, "/v1/achievements/u1/initialize", "", auth.ScopeWrite))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = serve(handler, authedRequest(http.MethodGet, "/v1/achievements/u1", "", auth.ScopeRead))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var resp ProgressResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Records) != len(achievement.Catalog()) {
		t.Fatalf("expected %d records got %d", len(achievement.Catalog()), len(resp.Records))
	}
	for _, rec := range resp.Records {
		if rec.Progress != 0 || rec.UnlockedAt != nil {
			t.Fatalf("record %s not seeded at zero", rec.AchievementID)
		}
	}
}

func TestStatsReflectUnlocks(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 45},
		},
	}
	handler, _ := newTestHandler(t, activities)

	serve(handler, authedRequest(http.MethodPost, "/v1/achievements/u1/evaluate", "", auth.ScopeWrite))

	rr := serve(handler, authedRequest(http.MethodGet, "/v1/achievements/u1/stats", "", auth.ScopeRead))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var stats achievement.Stats
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.Completed != 1 {
		t.Fatalf("expected 1 completed got %d", stats.Completed)
	}
	if stats.Total != len(achievement.Catalog()) {
		t.Fatalf("expected total %d got %d", len(achievement.Catalog()), stats.Total)
	}
}

func TestGeneratePlanIsPure(t *testing.T) {
	handler, plans := newTestHandler(t, nil)

	body := `{"age":25,"gender":"Male","goal":"Gain strength","experience_level":"Novice","days_per_week":4}`
	rr := serve(handler, authedRequest(http.MethodPost, "/v1/plans/generate", body, auth.ScopeWrite))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var plan map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &plan); err != nil {
		t.Fatalf("failed to decode plan: %v", err)
	}
	days, ok := plan["days"].([]interface{})
	if !ok || len(days) != 4 {
		t.Fatalf("expected 4 days got %v", plan["days"])
	}
	if stored := plans.Plans("u1"); len(stored) != 0 {
		t.Fatalf("generate must not persist, found %d plans", len(stored))
	}
}

func TestPersistPlanStoresAndReturnsIDs(t *testing.T) {
	handler, plans := newTestHandler(t, nil)

	body := `{"age":25,"gender":"Female","goal":"Gain muscle","experience_level":"Intermediate","days_per_week":3}`
	rr := serve(handler, authedRequest(http.MethodPost, "/v1/plans/u1", body, auth.ScopeWrite))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp PersistPlanResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.WorkoutIDs) != 3 {
		t.Fatalf("expected 3 workout ids got %d", len(resp.WorkoutIDs))
	}
	if stored := plans.Plans("u1"); len(stored) != 1 {
		t.Fatalf("expected 1 stored plan got %d", len(stored))
	}
}

func TestSpendCoinsRejectsInsufficientBalance(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	rr := serve(handler, authedRequest(http.MethodPost, "/v1/coins/u1/spend", `{"amount":50}`, auth.ScopeWrite))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d: %s", rr.Code, rr.Body.String())
	}

	// Balance is untouched.
	rr = serve(handler, authedRequest(http.MethodGet, "/v1/coins/u1", "", auth.ScopeRead))
	var balance BalanceResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &balance); err != nil {
		t.Fatalf("failed to decode balance: %v", err)
	}
	if balance.Balance != 0 {
		t.Fatalf("expected balance 0 got %d", balance.Balance)
	}
}

func TestBoostDoublesSubsequentCredits(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	rr := serve(handler, authedRequest(http.MethodPost, "/v1/coins/u1/boost", "", auth.ScopeWrite))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = serve(handler, authedRequest(http.MethodPost, "/v1/coins/u1/add", `{"amount":10}`, auth.ScopeWrite))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var resp MutationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Amount != 20 || resp.Balance != 20 {
		t.Fatalf("expected doubled credit of 20, got amount=%d balance=%d", resp.Amount, resp.Balance)
	}
}

func TestStreakSaverLifecycle(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	// Activating with no token fails.
	rr := serve(handler, authedRequest(http.MethodPost, "/v1/coins/u1/streak-saver/activate", "", auth.ScopeWrite))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rr.Code)
	}

	rr = serve(handler, authedRequest(http.MethodPost, "/v1/coins/u1/streak-saver", "", auth.ScopeWrite))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rr.Code)
	}

	rr = serve(handler, authedRequest(http.MethodPost, "/v1/coins/u1/streak-saver/activate", "", auth.ScopeWrite))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = serve(handler, authedRequest(http.MethodGet, "/v1/coins/u1/streak-protection", "", auth.ScopeRead))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var protection ProtectionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &protection); err != nil {
		t.Fatalf("failed to decode protection: %v", err)
	}
	if !protection.Active {
		t.Fatal("expected active protection after activation")
	}
	if protection.RemainingSeconds <= 0 {
		t.Fatalf("expected positive remaining window got %d", protection.RemainingSeconds)
	}
}

func TestHealthz(t *testing.T) {
	handler, _ := newTestHandler(t, nil)

	rr := serve(handler, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}
