package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	AccountID       string          `json:"accountId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description"`
}

func (r CreateTransactionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}

	switch strings.ToLower(strings.TrimSpace(r.TransactionType)) {
	case "debit", "credit", "transfer":
	default:
		errs = append(errs, "transactionType must be one of debit, credit, transfer")
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	currency := strings.TrimSpace(r.Currency)
	if currency != "" && len(currency) != 3 {
		errs = append(errs, "currency must be 3 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransactionResponse struct {
	ID              string           `json:"id"`
	AccountID       string           `json:"accountId"`
	TransactionType string           `json:"transactionType"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Description     string           `json:"description,omitempty"`
	ReferenceNumber string           `json:"referenceNumber"`
	Status          string           `json:"status"`
	BalanceAfter    *decimal.Decimal `json:"balanceAfter,omitempty"`
	ToAccountID     string           `json:"toAccountId,omitempty"`
	CreatedAt       string           `json:"createdAt"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
