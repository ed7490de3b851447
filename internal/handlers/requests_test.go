package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/mocks/service_mocks"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandler_CreateRequest(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *service_mocks.MockRequestService)
		expectedStatus int
	}{
		{
			name:        "успешное создание",
			requestBody: `{"type": "deposit", "amount": "50", "payment_method": "card", "payment_details": "4111 **** 1111"}`,
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CreateRequest(gomock.Any(), int64(1), gomock.Any()).Return(&models.Request{
					ID:     1,
					Type:   models.RequestTypeDeposit,
					Amount: decimal.NewFromInt(50),
					Status: models.RequestStatusPending,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "неизвестный тип отбрасывается валидацией",
			requestBody:    `{"type": "transfer", "amount": "50", "payment_method": "card", "payment_details": "x"}`,
			mockSetup:      func(m *service_mocks.MockRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "невалидный json",
			requestBody:    `{"type":`,
			mockSetup:      func(m *service_mocks.MockRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "превышен дневной лимит",
			requestBody: `{"type": "deposit", "amount": "50", "payment_method": "card", "payment_details": "x"}`,
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CreateRequest(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrDailyLimitExceeded)
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:        "недостаточно средств для вывода",
			requestBody: `{"type": "withdrawal", "amount": "150", "payment_method": "card", "payment_details": "x"}`,
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CreateRequest(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name:        "кошелёк заблокирован",
			requestBody: `{"type": "deposit", "amount": "50", "payment_method": "card", "payment_details": "x"}`,
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CreateRequest(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrWalletInactive)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRequestService := service_mocks.NewMockRequestService(ctrl)
			tt.mockSetup(mockRequestService)

			h := &Handler{requestService: mockRequestService, validate: validator.New()}

			req := httptest.NewRequest(http.MethodPost, "/api/user/wallet/requests", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			req = withUser(req, 1, models.RoleUser)
			w := httptest.NewRecorder()

			h.CreateRequest(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestHandler_GetRequests(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(m *service_mocks.MockRequestService)
		expectedStatus int
	}{
		{
			name: "возвращает запросы",
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().GetUserRequests(gomock.Any(), int64(1), gomock.Any()).Return([]models.Request{
					{ID: 1, Status: models.RequestStatusPending},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "нет запросов",
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().GetUserRequests(gomock.Any(), int64(1), gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRequestService := service_mocks.NewMockRequestService(ctrl)
			tt.mockSetup(mockRequestService)

			h := &Handler{requestService: mockRequestService}

			req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/wallet/requests", nil), 1, models.RoleUser)
			w := httptest.NewRecorder()

			h.GetRequests(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestHandler_CancelRequest(t *testing.T) {
	tests := []struct {
		name           string
		requestID      string
		mockSetup      func(m *service_mocks.MockRequestService)
		expectedStatus int
	}{
		{
			name:      "успешная отмена",
			requestID: "1",
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CancelRequest(gomock.Any(), int64(1), int64(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "запрос не найден",
			requestID: "42",
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CancelRequest(gomock.Any(), int64(42), int64(1)).Return(apperrors.ErrRequestNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "чужой запрос",
			requestID: "2",
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CancelRequest(gomock.Any(), int64(2), int64(1)).Return(apperrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "запрос уже обработан",
			requestID: "3",
			mockSetup: func(m *service_mocks.MockRequestService) {
				m.EXPECT().CancelRequest(gomock.Any(), int64(3), int64(1)).Return(apperrors.ErrRequestNotPending)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "невалидный id",
			requestID:      "abc",
			mockSetup:      func(m *service_mocks.MockRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRequestService := service_mocks.NewMockRequestService(ctrl)
			tt.mockSetup(mockRequestService)

			h := &Handler{requestService: mockRequestService}

			req := httptest.NewRequest(http.MethodPost, "/api/user/wallet/requests/"+tt.requestID+"/cancel", nil)
			req = withUser(req, 1, models.RoleUser)
			req = withURLParam(req, "id", tt.requestID)
			w := httptest.NewRecorder()

			h.CancelRequest(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
