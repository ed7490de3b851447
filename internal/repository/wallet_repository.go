package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/logger"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"go.uber.org/zap"
)

type WalletRepository interface {
	GetWalletByUserID(ctx context.Context, userID int64) (*models.Wallet, error)
	CreateWallet(ctx context.Context, userID int64, number string) (*models.Wallet, error)
	SetWalletActive(ctx context.Context, walletID int64, active bool) error
	GetTransactionsByWallet(ctx context.Context, walletID int64, page models.Page) ([]models.Transaction, error)
}

type walletRepo struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) WalletRepository {
	return &walletRepo{db: db}
}

func (r *walletRepo) GetWalletByUserID(ctx context.Context, userID int64) (*models.Wallet, error) {
	query := `
		SELECT id, user_id, number, balance, is_active, created_at, updated_at
		FROM wallets WHERE user_id = $1
	`
	var w models.Wallet
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&w.ID, &w.UserID, &w.Number, &w.Balance, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWalletNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *walletRepo) CreateWallet(ctx context.Context, userID int64, number string) (*models.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, number)
		VALUES ($1, $2)
		RETURNING id, user_id, number, balance, is_active, created_at, updated_at
	`
	var w models.Wallet
	err := r.db.QueryRowContext(ctx, query, userID, number).Scan(
		&w.ID, &w.UserID, &w.Number, &w.Balance, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *walletRepo) SetWalletActive(ctx context.Context, walletID int64, active bool) error {
	query := `
		UPDATE wallets SET is_active = $1, updated_at = now() WHERE id = $2
	`
	res, err := r.db.ExecContext(ctx, query, active, walletID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrWalletNotFound
	}
	return nil
}

func (r *walletRepo) GetTransactionsByWallet(ctx context.Context, walletID int64, page models.Page) ([]models.Transaction, error) {
	query := `
		SELECT id, wallet_id, user_id, reference, type, amount, balance_before, balance_after,
		       status, description, request_id, admin_id, admin_note, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, walletID, page.Limit(), page.Offset())
	if err != nil {
		logger.Log.Error("failed to query transactions", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID, &t.WalletID, &t.UserID, &t.Reference, &t.Type, &t.Amount,
			&t.BalanceBefore, &t.BalanceAfter, &t.Status, &t.Description,
			&t.RequestID, &t.AdminID, &t.AdminNote, &t.CreatedAt,
		); err != nil {
			logger.Log.Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
