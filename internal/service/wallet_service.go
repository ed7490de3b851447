package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/repository"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

const walletNumberLength = 12

type WalletService interface {
	GetWallet(ctx context.Context, userID int64) (*models.Wallet, error)
	GetTransactions(ctx context.Context, userID int64, page models.Page) ([]models.Transaction, error)
	AdjustBalance(ctx context.Context, actor models.Actor, userID int64, amount decimal.Decimal, description string) (*models.Transaction, error)
	SetWalletStatus(ctx context.Context, actor models.Actor, userID int64, active bool) (*models.Wallet, error)
}

type walletService struct {
	walletRepo repository.WalletRepository
	ledgerRepo repository.LedgerRepository
	userRepo   repository.UserRepository
}

func NewWalletService(walletRepo repository.WalletRepository, ledgerRepo repository.LedgerRepository, userRepo repository.UserRepository) WalletService {
	return &walletService{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
	}
}

// GetWallet returns the user's wallet, creating it on first access.
func (s *walletService) GetWallet(ctx context.Context, userID int64) (*models.Wallet, error) {
	wallet, err := s.walletRepo.GetWalletByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apperrors.ErrWalletNotFound) {
		return nil, err
	}

	wallet, createErr := s.walletRepo.CreateWallet(ctx, userID, utils.GenerateLuhnNumber(walletNumberLength))
	if createErr == nil {
		return wallet, nil
	}

	// A concurrent first access may have created the wallet already.
	wallet, err = s.walletRepo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, createErr
	}
	return wallet, nil
}

func (s *walletService) GetTransactions(ctx context.Context, userID int64, page models.Page) ([]models.Transaction, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.walletRepo.GetTransactionsByWallet(ctx, wallet.ID, page)
}

// AdjustBalance is the request-free admin route into the ledger. The signed
// amount routes to admin_credit or admin_debit with its absolute value.
func (s *walletService) AdjustBalance(ctx context.Context, actor models.Actor, userID int64, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.ErrInvalidRequest
	}
	if amount.IsZero() || !amount.Equal(amount.Round(2)) {
		return nil, apperrors.ErrInvalidAmount
	}

	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	txType := models.TxTypeAdminCredit
	if amount.IsNegative() {
		txType = models.TxTypeAdminDebit
	}

	return s.ledgerRepo.ApplyEntry(ctx, models.LedgerEntry{
		WalletID:    wallet.ID,
		UserID:      userID,
		Type:        txType,
		Amount:      amount.Abs(),
		Description: description,
		AdminID:     &actor.ID,
	})
}

func (s *walletService) SetWalletStatus(ctx context.Context, actor models.Actor, userID int64, active bool) (*models.Wallet, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrUnauthorized
	}

	wallet, err := s.walletRepo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wallet.IsActive == active {
		return wallet, nil
	}

	if err := s.walletRepo.SetWalletActive(ctx, wallet.ID, active); err != nil {
		return nil, err
	}

	wallet.IsActive = active
	return wallet, nil
}
