package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TxTypeDeposit     = "deposit"
	TxTypeWithdrawal  = "withdrawal"
	TxTypeAdminCredit = "admin_credit"
	TxTypeAdminDebit  = "admin_debit"
	TxTypeTransferIn  = "transfer_in"
	TxTypeTransferOut = "transfer_out"
)

const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
	TxStatusCancelled = "cancelled"
)

type Transaction struct {
	ID            int64           `json:"id" db:"id"`
	WalletID      int64           `json:"-" db:"wallet_id"`
	UserID        int64           `json:"-" db:"user_id"`
	Reference     string          `json:"reference" db:"reference"`
	Type          string          `json:"type" db:"type"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before" db:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after" db:"balance_after"`
	Status        string          `json:"status" db:"status"`
	Description   string          `json:"description" db:"description"`
	RequestID     *int64          `json:"request_id,omitempty" db:"request_id"`
	AdminID       *int64          `json:"admin_id,omitempty" db:"admin_id"`
	AdminNote     string          `json:"admin_note,omitempty" db:"admin_note"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// LedgerEntry describes one balance mutation to be applied atomically.
type LedgerEntry struct {
	WalletID    int64
	UserID      int64
	Type        string
	Amount      decimal.Decimal
	Description string
	RequestID   *int64
	AdminID     *int64
	AdminNote   string
}

// IsCreditType reports whether the transaction type increases the balance.
func IsCreditType(txType string) bool {
	switch txType {
	case TxTypeDeposit, TxTypeAdminCredit, TxTypeTransferIn:
		return true
	}
	return false
}

// IsDebitType reports whether the transaction type decreases the balance.
func IsDebitType(txType string) bool {
	switch txType {
	case TxTypeWithdrawal, TxTypeAdminDebit, TxTypeTransferOut:
		return true
	}
	return false
}
