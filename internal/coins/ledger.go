// Package coins manages the in-app currency: balances, time-boxed boosts and
// streak-saver tokens.
package coins

import (
	"context"
	"fmt"
	"time"

	"example.com/gamification/internal/observability"
)

// Boost and streak-saver parameters.
const (
	BoostTypeDoubleCoins = "double_coins"

	doubleCoinsDuration   = 24 * time.Hour
	doubleCoinsMultiplier = 2

	// ProtectionWindowDays is how long an activated streak saver shields a
	// streak.
	ProtectionWindowDays = 3
)

// Boost is a time-boxed coin multiplier over a half-open [Start, End) window.
type Boost struct {
	Type       string    `json:"type"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Multiplier int       `json:"multiplier"`
}

// Active reports whether the boost window covers now.
func (b Boost) Active(now time.Time) bool {
	return !now.Before(b.StartTime) && now.Before(b.EndTime)
}

// StreakSaver is a consumable protection token. It is purchased unused and
// activated at most once.
type StreakSaver struct {
	ID          string     `json:"id"`
	PurchasedAt time.Time  `json:"purchased_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	Used        bool       `json:"used"`
}

// Wallet is the full coin state for one user. Its methods carry the pure
// ledger rules; persistence wraps around them.
type Wallet struct {
	Balance int           `json:"balance"`
	Boosts  []Boost       `json:"boosts"`
	Savers  []StreakSaver `json:"savers"`
}

// pruneBoosts drops expired boosts. Pruning happens lazily on reads.
func (w *Wallet) pruneBoosts(now time.Time) {
	kept := w.Boosts[:0]
	for _, b := range w.Boosts {
		if now.Before(b.EndTime) {
			kept = append(kept, b)
		}
	}
	w.Boosts = kept
}

// Multiplier returns the product of all currently active boost multipliers.
func (w *Wallet) Multiplier(now time.Time) int {
	w.pruneBoosts(now)
	product := 1
	for _, b := range w.Boosts {
		if b.Active(now) && b.Multiplier > 0 {
			product *= b.Multiplier
		}
	}
	return product
}

// Add credits amount scaled by the active multiplier product and returns the
// credited value.
func (w *Wallet) Add(amount int, now time.Time) int {
	if amount <= 0 {
		return 0
	}
	credited := amount * w.Multiplier(now)
	w.Balance += credited
	return credited
}

// Subtract debits amount. It returns false without mutating when the balance
// is insufficient; the balance never goes negative.
func (w *Wallet) Subtract(amount int) bool {
	if amount < 0 || w.Balance < amount {
		return false
	}
	w.Balance -= amount
	return true
}

// ActivateDoubleCoins creates or replaces the single double_coins boost with
// a fresh 24-hour window. The boost never stacks with itself.
func (w *Wallet) ActivateDoubleCoins(now time.Time) Boost {
	w.pruneBoosts(now)
	kept := w.Boosts[:0]
	for _, b := range w.Boosts {
		if b.Type != BoostTypeDoubleCoins {
			kept = append(kept, b)
		}
	}
	boost := Boost{
		Type:       BoostTypeDoubleCoins,
		StartTime:  now,
		EndTime:    now.Add(doubleCoinsDuration),
		Multiplier: doubleCoinsMultiplier,
	}
	w.Boosts = append(kept, boost)
	return boost
}

// AddSaver appends an unused streak-saver token.
func (w *Wallet) AddSaver(id string, now time.Time) {
	w.Savers = append(w.Savers, StreakSaver{ID: id, PurchasedAt: now})
}

// ActivateSaver consumes one unused token, starting the protection window at
// now. It returns false when no unused token exists.
func (w *Wallet) ActivateSaver(now time.Time) bool {
	for i := range w.Savers {
		if w.Savers[i].Used || w.Savers[i].ActivatedAt != nil {
			continue
		}
		ts := now
		w.Savers[i].ActivatedAt = &ts
		w.Savers[i].Used = true
		return true
	}
	return false
}

// ProtectionActive reports whether any activated saver window covers now.
func (w Wallet) ProtectionActive(now time.Time) bool {
	return w.ProtectionRemaining(now) > 0
}

// ProtectionRemaining returns the longest remaining protection window, or
// zero when none is active. The ledger only exposes this signal; it does not
// intervene in streak computation.
func (w Wallet) ProtectionRemaining(now time.Time) time.Duration {
	var remaining time.Duration
	for _, s := range w.Savers {
		if s.ActivatedAt == nil {
			continue
		}
		until := s.ActivatedAt.AddDate(0, 0, ProtectionWindowDays)
		if d := until.Sub(now); d > remaining {
			remaining = d
		}
	}
	return remaining
}

// Store persists wallets keyed by user.
type Store interface {
	Load(ctx context.Context, userID string) (Wallet, error)
	Save(ctx context.Context, userID string, wallet Wallet) error
}

// Ledger applies wallet operations through a Store.
type Ledger struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewLedger constructs a Ledger.
func NewLedger(store Store, newID func() string) *Ledger {
	return &Ledger{store: store, now: time.Now, newID: newID}
}

// Balance returns the user's current coin balance.
func (l *Ledger) Balance(ctx context.Context, userID string) (int, error) {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// AddCoins credits amount scaled by active boosts and returns the credited
// value.
func (l *Ledger) AddCoins(ctx context.Context, userID string, amount int) (int, error) {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return 0, err
	}
	credited := wallet.Add(amount, l.now())
	if err := l.store.Save(ctx, userID, wallet); err != nil {
		return 0, fmt.Errorf("save wallet: %w", err)
	}
	observability.RecordCoinsCredited(credited)
	return credited, nil
}

// SubtractCoins debits amount. The boolean is false, with no mutation, when
// the balance is insufficient.
func (l *Ledger) SubtractCoins(ctx context.Context, userID string, amount int) (bool, error) {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	if !wallet.Subtract(amount) {
		return false, nil
	}
	if err := l.store.Save(ctx, userID, wallet); err != nil {
		return false, fmt.Errorf("save wallet: %w", err)
	}
	return true, nil
}

// ActivateDoubleCoinBoost starts (or restarts) the 24-hour double-coins
// boost.
func (l *Ledger) ActivateDoubleCoinBoost(ctx context.Context, userID string) (Boost, error) {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return Boost{}, err
	}
	boost := wallet.ActivateDoubleCoins(l.now())
	if err := l.store.Save(ctx, userID, wallet); err != nil {
		return Boost{}, fmt.Errorf("save wallet: %w", err)
	}
	return boost, nil
}

// AddStreakSaver appends a purchased, unused token.
func (l *Ledger) AddStreakSaver(ctx context.Context, userID string) error {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return err
	}
	wallet.AddSaver(l.newID(), l.now())
	return l.store.Save(ctx, userID, wallet)
}

// ActivateStreakSaver consumes one unused token. The boolean is false when
// no unused token exists.
func (l *Ledger) ActivateStreakSaver(ctx context.Context, userID string) (bool, error) {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	if !wallet.ActivateSaver(l.now()) {
		return false, nil
	}
	if err := l.store.Save(ctx, userID, wallet); err != nil {
		return false, fmt.Errorf("save wallet: %w", err)
	}
	return true, nil
}

// IsStreakProtectionActive reports whether a protection window covers now.
func (l *Ledger) IsStreakProtectionActive(ctx context.Context, userID string) (bool, error) {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	return wallet.ProtectionActive(l.now()), nil
}

// ProtectionTimeRemaining returns the remaining protection window.
func (l *Ledger) ProtectionTimeRemaining(ctx context.Context, userID string) (time.Duration, error) {
	wallet, err := l.store.Load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.ProtectionRemaining(l.now()), nil
}
