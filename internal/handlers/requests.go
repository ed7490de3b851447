package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/logger"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/middleware"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input models.CreateRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	req, err := h.requestService.CreateRequest(r.Context(), userID, input)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req)
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid request", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrWalletInactive):
		http.Error(w, "wallet is inactive", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrDailyLimitExceeded):
		http.Error(w, "daily request limit exceeded", http.StatusTooManyRequests)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create request error", zap.Error(err))
	}
}

func (h *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	requests, err := h.requestService.GetUserRequests(r.Context(), userID, pageFromQuery(r))
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get requests", zap.Error(err))
		return
	}

	if len(requests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(requests); err != nil {
		logger.Log.Error("failed to encode requests json", zap.Error(err))
	}
}

func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	err = h.requestService.CancelRequest(r.Context(), requestID, userID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrRequestNotFound):
		http.Error(w, "request not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrUnauthorized):
		http.Error(w, "not your request", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrRequestNotPending):
		http.Error(w, "request is not pending", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("cancel request error", zap.Error(err))
	}
}
