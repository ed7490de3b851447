package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/logger"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerRepository is the only writer of wallets.balance and
// wallet_transactions. Every method runs as one database transaction holding
// a row lock on the target wallet until commit, so concurrent mutations of
// the same wallet serialize and never read a stale balance.
type LedgerRepository interface {
	ApplyEntry(ctx context.Context, entry models.LedgerEntry) (*models.Transaction, error)
	DisposeRequest(ctx context.Context, requestID, adminID int64, action, adminNotes string) (*models.Request, error)
}

type ledgerRepo struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return &ledgerRepo{db: db}
}

func (r *ledgerRepo) ApplyEntry(ctx context.Context, entry models.LedgerEntry) (*models.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error")
			}
		}
	}()

	txn, err := r.applyEntryTx(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *ledgerRepo) DisposeRequest(ctx context.Context, requestID, adminID int64, action, adminNotes string) (*models.Request, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error")
			}
		}
	}()

	req, err := r.lockRequestTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusPending {
		err = apperrors.ErrRequestNotPending
		return nil, err
	}

	status := models.RequestStatusRejected
	notes := adminNotes
	var insufficient bool

	if action == models.RequestActionApprove {
		_, applyErr := r.applyEntryTx(ctx, tx, models.LedgerEntry{
			WalletID:    req.WalletID,
			UserID:      req.UserID,
			Type:        req.Type,
			Amount:      req.Amount,
			Description: fmt.Sprintf("%s request #%d approved", req.Type, req.ID),
			RequestID:   &req.ID,
			AdminID:     &adminID,
			AdminNote:   adminNotes,
		})
		switch {
		case applyErr == nil:
			status = models.RequestStatusApproved
		case errors.Is(applyErr, apperrors.ErrInsufficientFunds):
			// A withdrawal that became unaffordable between creation and
			// approval is terminal: reject it instead of leaving it pending.
			insufficient = true
			notes = strings.TrimSpace(notes + " (insufficient funds at approval)")
		default:
			err = applyErr
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE wallet_requests
		SET status = $1, admin_id = $2, admin_notes = $3, updated_at = now()
		WHERE id = $4
	`, status, adminID, notes, requestID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	req.Status = status
	req.AdminID = &adminID
	req.AdminNotes = notes
	req.UpdatedAt = time.Now()

	if insufficient {
		return req, apperrors.ErrInsufficientFunds
	}
	return req, nil
}

func (r *ledgerRepo) lockRequestTx(ctx context.Context, tx *sql.Tx, requestID int64) (*models.Request, error) {
	query := `
		SELECT id, wallet_id, user_id, type, amount, status, payment_method,
		       payment_details, user_notes, admin_notes, admin_id, created_at, updated_at
		FROM wallet_requests
		WHERE id = $1
		FOR UPDATE
	`
	var req models.Request
	err := tx.QueryRowContext(ctx, query, requestID).Scan(
		&req.ID, &req.WalletID, &req.UserID, &req.Type, &req.Amount, &req.Status,
		&req.PaymentMethod, &req.PaymentDetails, &req.UserNotes, &req.AdminNotes,
		&req.AdminID, &req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// applyEntryTx performs the balance read, delta check, wallet update and
// transaction insert inside the caller's transaction. The FOR UPDATE lock on
// the wallet row is held until the caller commits.
func (r *ledgerRepo) applyEntryTx(ctx context.Context, tx *sql.Tx, entry models.LedgerEntry) (*models.Transaction, error) {
	if !entry.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	var (
		balance  decimal.Decimal
		isActive bool
	)
	err := tx.QueryRowContext(ctx, `
		SELECT balance, is_active FROM wallets WHERE id = $1 FOR UPDATE
	`, entry.WalletID).Scan(&balance, &isActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}
	if !isActive {
		return nil, apperrors.ErrWalletInactive
	}

	var newBalance decimal.Decimal
	switch {
	case models.IsCreditType(entry.Type):
		newBalance = balance.Add(entry.Amount)
	case models.IsDebitType(entry.Type):
		newBalance = balance.Sub(entry.Amount)
	default:
		return nil, fmt.Errorf("unknown transaction type %q", entry.Type)
	}

	if newBalance.IsNegative() {
		return nil, apperrors.ErrInsufficientFunds
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE wallets SET balance = $1, updated_at = now() WHERE id = $2
	`, newBalance, entry.WalletID)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		WalletID:      entry.WalletID,
		UserID:        entry.UserID,
		Reference:     uuid.NewString(),
		Type:          entry.Type,
		Amount:        entry.Amount,
		BalanceBefore: balance,
		BalanceAfter:  newBalance,
		Status:        models.TxStatusCompleted,
		Description:   entry.Description,
		RequestID:     entry.RequestID,
		AdminID:       entry.AdminID,
		AdminNote:     entry.AdminNote,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO wallet_transactions
			(wallet_id, user_id, reference, type, amount, balance_before, balance_after,
			 status, description, request_id, admin_id, admin_note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`,
		txn.WalletID, txn.UserID, txn.Reference, txn.Type, txn.Amount,
		txn.BalanceBefore, txn.BalanceAfter, txn.Status, txn.Description,
		txn.RequestID, txn.AdminID, txn.AdminNote,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return nil, err
	}

	return txn, nil
}
