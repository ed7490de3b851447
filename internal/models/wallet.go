package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        int64           `json:"-" db:"id"`
	UserID    int64           `json:"-" db:"user_id"`
	Number    string          `json:"number" db:"number"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	IsActive  bool            `json:"is_active" db:"is_active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
