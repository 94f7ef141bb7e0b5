package memstore

import (
	"context"
	"sync"

	"example.com/gamification/internal/coins"
)

// WalletStore is an in-memory coins.Store.
type WalletStore struct {
	mu      sync.Mutex
	wallets map[string]coins.Wallet
}

var _ coins.Store = (*WalletStore)(nil)

// NewWalletStore constructs an empty WalletStore.
func NewWalletStore() *WalletStore {
	return &WalletStore{wallets: make(map[string]coins.Wallet)}
}

// Load implements coins.Store. A missing wallet is an empty wallet.
func (s *WalletStore) Load(ctx context.Context, userID string) (coins.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := s.wallets[userID]
	wallet.Boosts = append([]coins.Boost(nil), wallet.Boosts...)
	wallet.Savers = append([]coins.StreakSaver(nil), wallet.Savers...)
	return wallet, nil
}

// Save implements coins.Store.
func (s *WalletStore) Save(ctx context.Context, userID string, wallet coins.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallets[userID] = wallet
	return nil
}
