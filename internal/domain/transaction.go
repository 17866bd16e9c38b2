package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDebit    TransactionType = "debit"
	TransactionTypeCredit   TransactionType = "credit"
	TransactionTypeTransfer TransactionType = "transfer"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction is an immutable ledger entry recording one balance movement
// on one account. A transfer produces exactly two entries whose ToAccountID
// fields point at each other's account.
type Transaction struct {
	ID              string
	AccountID       string
	TransactionType TransactionType
	Amount          decimal.Decimal
	Currency        string
	Description     *string
	ReferenceNumber string
	Status          TransactionStatus
	BalanceAfter    decimal.NullDecimal
	ToAccountID     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDebit, TransactionTypeCredit, TransactionTypeTransfer:
		return true
	}
	return false
}

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}
