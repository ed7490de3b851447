package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/mocks/repository_mocks"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func newRequestServiceForTest(t *testing.T) (RequestService, *repository_mocks.MockRequestRepository, *repository_mocks.MockLedgerRepository, *repository_mocks.MockWalletRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	requestRepo := repository_mocks.NewMockRequestRepository(ctrl)
	ledgerRepo := repository_mocks.NewMockLedgerRepository(ctrl)
	walletRepo := repository_mocks.NewMockWalletRepository(ctrl)
	userRepo := repository_mocks.NewMockUserRepository(ctrl)

	walletService := NewWalletService(walletRepo, ledgerRepo, userRepo)
	service := NewRequestService(requestRepo, ledgerRepo, walletService, DefaultDailyRequestLimit)
	return service, requestRepo, ledgerRepo, walletRepo
}

func TestRequestService_CreateRequest(t *testing.T) {
	activeWallet := &models.Wallet{ID: 5, UserID: 20, Balance: decimal.NewFromInt(100), IsActive: true}

	tests := []struct {
		name        string
		input       models.CreateRequestInput
		mockSetup   func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository)
		expectedErr error
	}{
		{
			name:  "успешное создание запроса на пополнение",
			input: models.CreateRequestInput{Type: models.RequestTypeDeposit, Amount: decimal.NewFromInt(50), PaymentMethod: "card"},
			mockSetup: func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {
				walletRepo.EXPECT().GetWalletByUserID(gomock.Any(), int64(20)).Return(activeWallet, nil)
				requestRepo.EXPECT().CountRequestsSince(gomock.Any(), int64(20), gomock.Any()).Return(0, nil)
				requestRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *models.Request) error {
						if req.WalletID != activeWallet.ID {
							t.Errorf("expected wallet id %d, got %d", activeWallet.ID, req.WalletID)
						}
						req.ID = 1
						req.Status = models.RequestStatusPending
						return nil
					})
			},
		},
		{
			name:  "третий запрос за день проходит",
			input: models.CreateRequestInput{Type: models.RequestTypeDeposit, Amount: decimal.NewFromInt(10)},
			mockSetup: func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {
				walletRepo.EXPECT().GetWalletByUserID(gomock.Any(), int64(20)).Return(activeWallet, nil)
				requestRepo.EXPECT().CountRequestsSince(gomock.Any(), int64(20), gomock.Any()).Return(2, nil)
				requestRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "четвёртый запрос за день отклоняется",
			input: models.CreateRequestInput{Type: models.RequestTypeDeposit, Amount: decimal.NewFromInt(10)},
			mockSetup: func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {
				walletRepo.EXPECT().GetWalletByUserID(gomock.Any(), int64(20)).Return(activeWallet, nil)
				requestRepo.EXPECT().CountRequestsSince(gomock.Any(), int64(20), gomock.Any()).Return(3, nil)
			},
			expectedErr: apperrors.ErrDailyLimitExceeded,
		},
		{
			name:  "вывод больше баланса",
			input: models.CreateRequestInput{Type: models.RequestTypeWithdrawal, Amount: decimal.NewFromInt(150)},
			mockSetup: func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {
				walletRepo.EXPECT().GetWalletByUserID(gomock.Any(), int64(20)).Return(activeWallet, nil)
				requestRepo.EXPECT().CountRequestsSince(gomock.Any(), int64(20), gomock.Any()).Return(0, nil)
			},
			expectedErr: apperrors.ErrInsufficientFunds,
		},
		{
			name:  "вывод равный балансу проходит",
			input: models.CreateRequestInput{Type: models.RequestTypeWithdrawal, Amount: decimal.NewFromInt(100)},
			mockSetup: func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {
				walletRepo.EXPECT().GetWalletByUserID(gomock.Any(), int64(20)).Return(activeWallet, nil)
				requestRepo.EXPECT().CountRequestsSince(gomock.Any(), int64(20), gomock.Any()).Return(0, nil)
				requestRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "неактивный кошелёк",
			input: models.CreateRequestInput{Type: models.RequestTypeDeposit, Amount: decimal.NewFromInt(10)},
			mockSetup: func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {
				walletRepo.EXPECT().GetWalletByUserID(gomock.Any(), int64(20)).Return(&models.Wallet{ID: 6, UserID: 20, IsActive: false}, nil)
			},
			expectedErr: apperrors.ErrWalletInactive,
		},
		{
			name:        "неизвестный тип запроса",
			input:       models.CreateRequestInput{Type: "transfer", Amount: decimal.NewFromInt(10)},
			mockSetup:   func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {},
			expectedErr: apperrors.ErrInvalidRequest,
		},
		{
			name:        "неположительная сумма",
			input:       models.CreateRequestInput{Type: models.RequestTypeDeposit, Amount: decimal.NewFromInt(-5)},
			mockSetup:   func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {},
			expectedErr: apperrors.ErrInvalidAmount,
		},
		{
			name:        "больше двух знаков после запятой",
			input:       models.CreateRequestInput{Type: models.RequestTypeDeposit, Amount: decimal.RequireFromString("10.123")},
			mockSetup:   func(requestRepo *repository_mocks.MockRequestRepository, walletRepo *repository_mocks.MockWalletRepository) {},
			expectedErr: apperrors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, requestRepo, _, walletRepo := newRequestServiceForTest(t)
			tt.mockSetup(requestRepo, walletRepo)

			req, err := service.CreateRequest(context.Background(), 20, tt.input)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req == nil {
				t.Fatal("expected request, got nil")
			}
			if req.Type != tt.input.Type {
				t.Errorf("expected type %s, got %s", tt.input.Type, req.Type)
			}
		})
	}
}

func TestRequestService_CancelRequest(t *testing.T) {
	tests := []struct {
		name        string
		userID      int64
		mockSetup   func(m *repository_mocks.MockRequestRepository)
		expectedErr error
	}{
		{
			name:   "успешная отмена",
			userID: 20,
			mockSetup: func(m *repository_mocks.MockRequestRepository) {
				m.EXPECT().GetRequestByID(gomock.Any(), int64(1)).Return(&models.Request{ID: 1, UserID: 20, Status: models.RequestStatusPending}, nil)
				m.EXPECT().CancelRequest(gomock.Any(), int64(1), int64(20)).Return(nil)
			},
		},
		{
			name:   "чужой запрос",
			userID: 21,
			mockSetup: func(m *repository_mocks.MockRequestRepository) {
				m.EXPECT().GetRequestByID(gomock.Any(), int64(1)).Return(&models.Request{ID: 1, UserID: 20, Status: models.RequestStatusPending}, nil)
			},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:   "запрос не найден",
			userID: 20,
			mockSetup: func(m *repository_mocks.MockRequestRepository) {
				m.EXPECT().GetRequestByID(gomock.Any(), int64(1)).Return(nil, apperrors.ErrRequestNotFound)
			},
			expectedErr: apperrors.ErrRequestNotFound,
		},
		{
			name:   "запрос уже обработан",
			userID: 20,
			mockSetup: func(m *repository_mocks.MockRequestRepository) {
				m.EXPECT().GetRequestByID(gomock.Any(), int64(1)).Return(&models.Request{ID: 1, UserID: 20, Status: models.RequestStatusApproved}, nil)
				m.EXPECT().CancelRequest(gomock.Any(), int64(1), int64(20)).Return(apperrors.ErrRequestNotPending)
			},
			expectedErr: apperrors.ErrRequestNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, requestRepo, _, _ := newRequestServiceForTest(t)
			tt.mockSetup(requestRepo)

			err := service.CancelRequest(context.Background(), 1, tt.userID)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRequestService_ProcessRequest(t *testing.T) {
	admin := models.Actor{ID: 1, Role: models.RoleAdmin}

	tests := []struct {
		name        string
		actor       models.Actor
		input       models.ProcessRequestInput
		mockSetup   func(m *repository_mocks.MockLedgerRepository)
		expectedErr error
	}{
		{
			name:  "одобрение запроса",
			actor: admin,
			input: models.ProcessRequestInput{Action: models.RequestActionApprove, AdminNotes: "ok"},
			mockSetup: func(m *repository_mocks.MockLedgerRepository) {
				m.EXPECT().DisposeRequest(gomock.Any(), int64(1), int64(1), models.RequestActionApprove, "ok").
					Return(&models.Request{ID: 1, Status: models.RequestStatusApproved}, nil)
			},
		},
		{
			name:  "повторная обработка",
			actor: admin,
			input: models.ProcessRequestInput{Action: models.RequestActionApprove},
			mockSetup: func(m *repository_mocks.MockLedgerRepository) {
				m.EXPECT().DisposeRequest(gomock.Any(), int64(1), int64(1), models.RequestActionApprove, "").
					Return(nil, apperrors.ErrRequestNotPending)
			},
			expectedErr: apperrors.ErrRequestNotPending,
		},
		{
			name:        "не админ",
			actor:       models.Actor{ID: 2, Role: models.RoleUser},
			input:       models.ProcessRequestInput{Action: models.RequestActionApprove},
			mockSetup:   func(m *repository_mocks.MockLedgerRepository) {},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:        "неизвестное действие",
			actor:       admin,
			input:       models.ProcessRequestInput{Action: "escalate"},
			mockSetup:   func(m *repository_mocks.MockLedgerRepository) {},
			expectedErr: apperrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, ledgerRepo, _ := newRequestServiceForTest(t)
			tt.mockSetup(ledgerRepo)

			req, err := service.ProcessRequest(context.Background(), tt.actor, 1, tt.input)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Status != models.RequestStatusApproved {
				t.Errorf("expected status %s, got %s", models.RequestStatusApproved, req.Status)
			}
		})
	}
}

func TestRequestService_GetAllRequests(t *testing.T) {
	service, requestRepo, _, _ := newRequestServiceForTest(t)

	filter := models.RequestFilter{Status: models.RequestStatusPending}
	requestRepo.EXPECT().GetRequests(gomock.Any(), filter, gomock.Any()).
		Return([]models.Request{{ID: 1, Status: models.RequestStatusPending}}, nil)

	requests, err := service.GetAllRequests(context.Background(), models.Actor{ID: 1, Role: models.RoleAdmin}, filter, models.Page{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 {
		t.Errorf("expected 1 request, got %d", len(requests))
	}

	if _, err := service.GetAllRequests(context.Background(), models.Actor{ID: 2, Role: models.RoleUser}, filter, models.Page{}); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("expected error %v, got %v", apperrors.ErrUnauthorized, err)
	}
}
