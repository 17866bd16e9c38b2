package domain

import (
	"context"
	"time"
)

type TransactionFilter struct {
	AccountID string
	Type      TransactionType
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit int) ([]Transaction, error)
	// PostTransfer applies a paired ledger movement atomically: debit the
	// source balance (guarded against overdraw), credit the destination
	// balance, and insert both entries. Either everything commits or
	// nothing does.
	PostTransfer(ctx context.Context, debit Transaction, credit Transaction) (Transaction, Transaction, error)
}
