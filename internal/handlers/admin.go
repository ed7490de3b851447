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

func (h *Handler) GetAllRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter := models.RequestFilter{
		Status: r.URL.Query().Get("status"),
		Type:   r.URL.Query().Get("type"),
	}
	if err := h.validate.Struct(filter); err != nil {
		http.Error(w, "invalid filter", http.StatusBadRequest)
		return
	}

	requests, err := h.requestService.GetAllRequests(r.Context(), actor, filter, pageFromQuery(r))
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUnauthorized):
		http.Error(w, "admin role required", http.StatusForbidden)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get all requests", zap.Error(err))
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

func (h *Handler) ProcessRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	var input models.ProcessRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	req, err := h.requestService.ProcessRequest(r.Context(), actor, requestID, input)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(req)
	case errors.Is(err, apperrors.ErrUnauthorized):
		http.Error(w, "admin role required", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrRequestNotFound):
		http.Error(w, "request not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrRequestNotPending):
		http.Error(w, "request is not pending", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds, request rejected", http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid action", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("process request error", zap.Error(err))
	}
}

func (h *Handler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input models.AdjustBalanceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	txn, err := h.walletService.AdjustBalance(r.Context(), actor, input.UserID, input.Amount, input.Description)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(txn)
	case errors.Is(err, apperrors.ErrUnauthorized):
		http.Error(w, "admin role required", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrWalletInactive):
		http.Error(w, "wallet is inactive", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid adjustment", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("adjust balance error", zap.Error(err))
	}
}

type walletStatusRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) SetWalletStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req walletStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	wallet, err := h.walletService.SetWalletStatus(r.Context(), actor, userID, req.Active)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(wallet)
	case errors.Is(err, apperrors.ErrUnauthorized):
		http.Error(w, "admin role required", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrWalletNotFound):
		http.Error(w, "wallet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("set wallet status error", zap.Error(err))
	}
}
