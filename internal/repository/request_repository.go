package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/logger"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"go.uber.org/zap"
)

type RequestRepository interface {
	CreateRequest(ctx context.Context, req *models.Request) error
	GetRequestByID(ctx context.Context, id int64) (*models.Request, error)
	GetRequestsByUser(ctx context.Context, userID int64, page models.Page) ([]models.Request, error)
	GetRequests(ctx context.Context, filter models.RequestFilter, page models.Page) ([]models.Request, error)
	CountRequestsSince(ctx context.Context, userID int64, since time.Time) (int, error)
	CancelRequest(ctx context.Context, requestID, userID int64) error
}

type requestRepo struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) RequestRepository {
	return &requestRepo{db: db}
}

const requestColumns = `id, wallet_id, user_id, type, amount, status, payment_method,
	payment_details, user_notes, admin_notes, admin_id, created_at, updated_at`

func scanRequest(row *sql.Row) (*models.Request, error) {
	var req models.Request
	err := row.Scan(
		&req.ID, &req.WalletID, &req.UserID, &req.Type, &req.Amount, &req.Status,
		&req.PaymentMethod, &req.PaymentDetails, &req.UserNotes, &req.AdminNotes,
		&req.AdminID, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepo) CreateRequest(ctx context.Context, req *models.Request) error {
	query := `
		INSERT INTO wallet_requests
			(wallet_id, user_id, type, amount, payment_method, payment_details, user_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		req.WalletID, req.UserID, req.Type, req.Amount,
		req.PaymentMethod, req.PaymentDetails, req.UserNotes,
	).Scan(&req.ID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		logger.Log.Error("failed to create request", zap.Error(err))
	}
	return err
}

func (r *requestRepo) GetRequestByID(ctx context.Context, id int64) (*models.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM wallet_requests WHERE id = $1`, requestColumns)
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepo) GetRequestsByUser(ctx context.Context, userID int64, page models.Page) ([]models.Request, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM wallet_requests
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, requestColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, page.Limit(), page.Offset())
	if err != nil {
		logger.Log.Error("failed to query requests", zap.Error(err))
		return nil, err
	}
	return collectRequests(rows)
}

func (r *requestRepo) GetRequests(ctx context.Context, filter models.RequestFilter, page models.Page) ([]models.Request, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM wallet_requests
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`, requestColumns)

	rows, err := r.db.QueryContext(ctx, query, filter.Status, filter.Type, page.Limit(), page.Offset())
	if err != nil {
		logger.Log.Error("failed to query requests", zap.Error(err))
		return nil, err
	}
	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]models.Request, error) {
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var requests []models.Request
	for rows.Next() {
		var req models.Request
		if err := rows.Scan(
			&req.ID, &req.WalletID, &req.UserID, &req.Type, &req.Amount, &req.Status,
			&req.PaymentMethod, &req.PaymentDetails, &req.UserNotes, &req.AdminNotes,
			&req.AdminID, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			logger.Log.Error("failed to scan request", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *requestRepo) CountRequestsSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM wallet_requests WHERE user_id = $1 AND created_at >= $2
	`, userID, since).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CancelRequest flips a pending request to cancelled. The status predicate in
// the WHERE clause makes the pending check and the flip a single atomic
// statement.
func (r *requestRepo) CancelRequest(ctx context.Context, requestID, userID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE wallet_requests
		SET status = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3 AND status = $4
	`, models.RequestStatusCanceled, requestID, userID, models.RequestStatusPending)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrRequestNotPending
	}
	return nil
}
