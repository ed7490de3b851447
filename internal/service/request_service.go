package service

import (
	"context"
	"time"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/repository"
)

const DefaultDailyRequestLimit = 3

type RequestService interface {
	CreateRequest(ctx context.Context, userID int64, input models.CreateRequestInput) (*models.Request, error)
	CancelRequest(ctx context.Context, requestID, userID int64) error
	ProcessRequest(ctx context.Context, actor models.Actor, requestID int64, input models.ProcessRequestInput) (*models.Request, error)
	GetUserRequests(ctx context.Context, userID int64, page models.Page) ([]models.Request, error)
	GetAllRequests(ctx context.Context, actor models.Actor, filter models.RequestFilter, page models.Page) ([]models.Request, error)
}

type requestService struct {
	requestRepo   repository.RequestRepository
	ledgerRepo    repository.LedgerRepository
	walletService WalletService
	dailyLimit    int
}

func NewRequestService(requestRepo repository.RequestRepository, ledgerRepo repository.LedgerRepository, walletService WalletService, dailyLimit int) RequestService {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyRequestLimit
	}
	return &requestService{
		requestRepo:   requestRepo,
		ledgerRepo:    ledgerRepo,
		walletService: walletService,
		dailyLimit:    dailyLimit,
	}
}

// CreateRequest admits a deposit or withdrawal request after the eligibility
// checks. Both the daily cap and the withdrawal sufficiency check are
// advisory at creation time; the balance is re-validated under lock when the
// request is approved.
func (s *requestService) CreateRequest(ctx context.Context, userID int64, input models.CreateRequestInput) (*models.Request, error) {
	if input.Type != models.RequestTypeDeposit && input.Type != models.RequestTypeWithdrawal {
		return nil, apperrors.ErrInvalidRequest
	}
	if !input.Amount.IsPositive() || !input.Amount.Equal(input.Amount.Round(2)) {
		return nil, apperrors.ErrInvalidAmount
	}

	wallet, err := s.walletService.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !wallet.IsActive {
		return nil, apperrors.ErrWalletInactive
	}

	count, err := s.requestRepo.CountRequestsSince(ctx, userID, startOfDay(time.Now()))
	if err != nil {
		return nil, err
	}
	if count >= s.dailyLimit {
		return nil, apperrors.ErrDailyLimitExceeded
	}

	if input.Type == models.RequestTypeWithdrawal && input.Amount.GreaterThan(wallet.Balance) {
		return nil, apperrors.ErrInsufficientFunds
	}

	req := &models.Request{
		WalletID:       wallet.ID,
		UserID:         userID,
		Type:           input.Type,
		Amount:         input.Amount,
		PaymentMethod:  input.PaymentMethod,
		PaymentDetails: input.PaymentDetails,
		UserNotes:      input.UserNotes,
	}

	if err := s.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// CancelRequest lets the owning user withdraw a request that is still
// pending.
func (s *requestService) CancelRequest(ctx context.Context, requestID, userID int64) error {
	req, err := s.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.UserID != userID {
		return apperrors.ErrUnauthorized
	}

	return s.requestRepo.CancelRequest(ctx, requestID, userID)
}

// ProcessRequest is the admin disposition path. The pending check and the
// status flip (plus the ledger entry on approval) happen in one atomic unit
// inside the ledger repository, so a racing second disposition observes
// NotPending.
func (s *requestService) ProcessRequest(ctx context.Context, actor models.Actor, requestID int64, input models.ProcessRequestInput) (*models.Request, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrUnauthorized
	}
	if input.Action != models.RequestActionApprove && input.Action != models.RequestActionReject {
		return nil, apperrors.ErrInvalidRequest
	}

	return s.ledgerRepo.DisposeRequest(ctx, requestID, actor.ID, input.Action, input.AdminNotes)
}

func (s *requestService) GetUserRequests(ctx context.Context, userID int64, page models.Page) ([]models.Request, error) {
	return s.requestRepo.GetRequestsByUser(ctx, userID, page)
}

func (s *requestService) GetAllRequests(ctx context.Context, actor models.Actor, filter models.RequestFilter, page models.Page) ([]models.Request, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrUnauthorized
	}
	return s.requestRepo.GetRequests(ctx, filter, page)
}

// startOfDay returns local midnight for the given moment, the calendar-day
// boundary of the request cap.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
