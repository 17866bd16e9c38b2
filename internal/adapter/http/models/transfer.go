package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

func (r CreateTransferRequest) Validate() error {
	var errs []string

	fromAccountID := strings.TrimSpace(r.FromAccountID)
	toAccountID := strings.TrimSpace(r.ToAccountID)

	if fromAccountID == "" {
		errs = append(errs, "fromAccountId is required")
	}
	if toAccountID == "" {
		errs = append(errs, "toAccountId is required")
	}
	if fromAccountID != "" && fromAccountID == toAccountID {
		errs = append(errs, "fromAccountId and toAccountId cannot be the same")
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	DebitTransaction  TransactionResponse `json:"debitTransaction"`
	CreditTransaction TransactionResponse `json:"creditTransaction"`
}

type TransferStatusResponse struct {
	Status          string          `json:"status"`
	ReferenceNumber string          `json:"referenceNumber"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       string          `json:"createdAt"`
}
