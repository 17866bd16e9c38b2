package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateTransferRequestValidateAccepts(t *testing.T) {
	req := CreateTransferRequest{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.NewFromFloat(150.00),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestCreateTransferRequestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		req  CreateTransferRequest
		want string
	}{
		{
			name: "missing source",
			req:  CreateTransferRequest{ToAccountID: "acc-2", Amount: decimal.NewFromInt(10)},
			want: "fromAccountId is required",
		},
		{
			name: "missing destination",
			req:  CreateTransferRequest{FromAccountID: "acc-1", Amount: decimal.NewFromInt(10)},
			want: "toAccountId is required",
		},
		{
			name: "same account",
			req:  CreateTransferRequest{FromAccountID: "acc-1", ToAccountID: "acc-1", Amount: decimal.NewFromInt(10)},
			want: "cannot be the same",
		},
		{
			name: "zero amount",
			req:  CreateTransferRequest{FromAccountID: "acc-1", ToAccountID: "acc-2"},
			want: "amount must be greater than zero",
		},
		{
			name: "negative amount",
			req:  CreateTransferRequest{FromAccountID: "acc-1", ToAccountID: "acc-2", Amount: decimal.NewFromInt(-5)},
			want: "amount must be greater than zero",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestApplyLoanRequestValidate(t *testing.T) {
	req := ApplyLoanRequest{
		LoanType:     "personal",
		Amount:       decimal.NewFromInt(12000),
		InterestRate: decimal.NewFromInt(6),
		TermMonths:   12,
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	req.TermMonths = 0
	if err := req.Validate(); err == nil {
		t.Fatal("expected validation error for zero term")
	}
}
