package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RequestTypeDeposit    = "deposit"
	RequestTypeWithdrawal = "withdrawal"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
	RequestStatusCanceled = "cancelled"
)

const (
	RequestActionApprove = "approve"
	RequestActionReject  = "reject"
)

type Request struct {
	ID             int64           `json:"id" db:"id"`
	WalletID       int64           `json:"-" db:"wallet_id"`
	UserID         int64           `json:"-" db:"user_id"`
	Type           string          `json:"type" db:"type"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Status         string          `json:"status" db:"status"`
	PaymentMethod  string          `json:"payment_method" db:"payment_method"`
	PaymentDetails string          `json:"payment_details" db:"payment_details"`
	UserNotes      string          `json:"user_notes,omitempty" db:"user_notes"`
	AdminNotes     string          `json:"admin_notes,omitempty" db:"admin_notes"`
	AdminID        *int64          `json:"admin_id,omitempty" db:"admin_id"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

type CreateRequestInput struct {
	Type           string          `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod  string          `json:"payment_method" validate:"required"`
	PaymentDetails string          `json:"payment_details" validate:"required"`
	UserNotes      string          `json:"user_notes" validate:"omitempty,max=500"`
}

type ProcessRequestInput struct {
	Action     string `json:"action" validate:"required,oneof=approve reject"`
	AdminNotes string `json:"admin_notes" validate:"omitempty,max=500"`
}

type AdjustBalanceInput struct {
	UserID      int64           `json:"user_id" validate:"required,gt=0"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
}

// RequestFilter narrows admin request listings; empty fields match anything.
type RequestFilter struct {
	Status string `validate:"omitempty,oneof=pending approved rejected cancelled"`
	Type   string `validate:"omitempty,oneof=deposit withdrawal"`
}

const DefaultPageSize = 20

type Page struct {
	Number int
	Size   int
}

func (p Page) Limit() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit()
}
