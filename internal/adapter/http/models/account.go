package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountType    string          `json:"accountType"`
	Currency       string          `json:"currency"`
	InitialDeposit decimal.Decimal `json:"initialDeposit"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	switch strings.ToLower(strings.TrimSpace(r.AccountType)) {
	case "savings", "checking", "credit":
	default:
		errs = append(errs, "accountType must be one of savings, checking, credit")
	}

	currency := strings.TrimSpace(r.Currency)
	if currency != "" && len(currency) != 3 {
		errs = append(errs, "currency must be 3 characters")
	}

	if r.InitialDeposit.IsNegative() {
		errs = append(errs, "initialDeposit cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UpdateAccountRequest struct {
	Status string `json:"status"`
}

func (r UpdateAccountRequest) Validate() error {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "active", "frozen", "closed":
		return nil
	}
	return errors.New("status must be one of active, frozen, closed")
}

type AccountResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

type BalanceResponse struct {
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"accountNumber"`
}

type StatementAccount struct {
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
}

type StatementResponse struct {
	Account      StatementAccount      `json:"account"`
	Transactions []TransactionResponse `json:"transactions"`
}
