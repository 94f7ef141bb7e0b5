package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/gamification/internal/coins"
)

// WalletStore persists coin wallets, boosts and streak savers.
type WalletStore struct {
	pool *pgxpool.Pool
}

// NewWalletStore constructs a WalletStore.
func NewWalletStore(pool *pgxpool.Pool) *WalletStore {
	return &WalletStore{pool: pool}
}

var _ coins.Store = (*WalletStore)(nil)

// Load implements coins.Store. A missing wallet reads as empty.
func (s *WalletStore) Load(ctx context.Context, userID string) (coins.Wallet, error) {
	var wallet coins.Wallet

	err := s.pool.QueryRow(ctx, `SELECT balance FROM coin_wallets WHERE user_id=$1`, userID).Scan(&wallet.Balance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return coins.Wallet{}, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT boost_type, start_time, end_time, multiplier FROM coin_boosts WHERE user_id=$1`, userID)
	if err != nil {
		return coins.Wallet{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var boost coins.Boost
		if err := rows.Scan(&boost.Type, &boost.StartTime, &boost.EndTime, &boost.Multiplier); err != nil {
			return coins.Wallet{}, err
		}
		wallet.Boosts = append(wallet.Boosts, boost)
	}
	if err := rows.Err(); err != nil {
		return coins.Wallet{}, err
	}

	saverRows, err := s.pool.Query(ctx,
		`SELECT saver_id, purchased_at, activated_at, used FROM streak_savers WHERE user_id=$1 ORDER BY purchased_at`, userID)
	if err != nil {
		return coins.Wallet{}, err
	}
	defer saverRows.Close()
	for saverRows.Next() {
		var saver coins.StreakSaver
		if err := saverRows.Scan(&saver.ID, &saver.PurchasedAt, &saver.ActivatedAt, &saver.Used); err != nil {
			return coins.Wallet{}, err
		}
		wallet.Savers = append(wallet.Savers, saver)
	}
	return wallet, saverRows.Err()
}

// Save implements coins.Store, replacing the stored wallet state in one
// transaction.
func (s *WalletStore) Save(ctx context.Context, userID string, wallet coins.Wallet) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const upsertBalance = `INSERT INTO coin_wallets (user_id, balance) VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET balance = EXCLUDED.balance`
	if _, err := tx.Exec(ctx, upsertBalance, userID, wallet.Balance); err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM coin_boosts WHERE user_id=$1`, userID); err != nil {
		return err
	}
	for _, boost := range wallet.Boosts {
		const insertBoost = `INSERT INTO coin_boosts (user_id, boost_type, start_time, end_time, multiplier)
            VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insertBoost, userID, boost.Type, boost.StartTime, boost.EndTime, boost.Multiplier); err != nil {
			return fmt.Errorf("insert boost: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM streak_savers WHERE user_id=$1`, userID); err != nil {
		return err
	}
	for _, saver := range wallet.Savers {
		if saver.ID == "" {
			saver.ID = uuid.NewString()
		}
		const insertSaver = `INSERT INTO streak_savers (saver_id, user_id, purchased_at, activated_at, used)
            VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insertSaver, saver.ID, userID, saver.PurchasedAt, saver.ActivatedAt, saver.Used); err != nil {
			return fmt.Errorf("insert streak saver: %w", err)
		}
	}

	return tx.Commit(ctx)
}
