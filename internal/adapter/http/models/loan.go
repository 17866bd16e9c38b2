package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type ApplyLoanRequest struct {
	LoanType     string          `json:"loanType"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"`
	TermMonths   int             `json:"termMonths"`
}

func (r ApplyLoanRequest) Validate() error {
	var errs []string

	switch strings.ToLower(strings.TrimSpace(r.LoanType)) {
	case "personal", "home", "auto", "education", "business":
	default:
		errs = append(errs, "loanType must be one of personal, home, auto, education, business")
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	if r.InterestRate.IsNegative() {
		errs = append(errs, "interestRate cannot be negative")
	}
	if r.TermMonths <= 0 {
		errs = append(errs, "termMonths must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UpdateLoanStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateLoanStatusRequest) Validate() error {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "pending", "approved", "active", "paid", "defaulted":
		return nil
	}
	return errors.New("status must be one of pending, approved, active, paid, defaulted")
}

type LoanPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r LoanPaymentRequest) Validate() error {
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

type LoanResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	LoanNumber         string          `json:"loanNumber"`
	LoanType           string          `json:"loanType"`
	Amount             decimal.Decimal `json:"amount"`
	InterestRate       decimal.Decimal `json:"interestRate"`
	TermMonths         int             `json:"termMonths"`
	MonthlyPayment     decimal.Decimal `json:"monthlyPayment"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	Status             string          `json:"status"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
}
