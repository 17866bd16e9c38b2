package services

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/domain"
)

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:            account.ID,
		UserID:        account.UserID,
		AccountNumber: account.AccountNumber,
		AccountType:   string(account.AccountType),
		Balance:       account.Balance,
		Currency:      account.Currency,
		Status:        string(account.Status),
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}
}

func mapTransactionToResponse(transaction domain.Transaction) models.TransactionResponse {
	response := models.TransactionResponse{
		ID:              transaction.ID,
		AccountID:       transaction.AccountID,
		TransactionType: string(transaction.TransactionType),
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		ReferenceNumber: transaction.ReferenceNumber,
		Status:          string(transaction.Status),
		CreatedAt:       transaction.CreatedAt.Format(time.RFC3339),
	}

	if transaction.Description != nil {
		response.Description = *transaction.Description
	}
	if transaction.BalanceAfter.Valid {
		value := transaction.BalanceAfter.Decimal
		response.BalanceAfter = &value
	}
	if transaction.ToAccountID != nil {
		response.ToAccountID = *transaction.ToAccountID
	}

	return response
}

func mapLoanToResponse(loan domain.Loan) models.LoanResponse {
	return models.LoanResponse{
		ID:                 loan.ID,
		UserID:             loan.UserID,
		LoanNumber:         loan.LoanNumber,
		LoanType:           string(loan.LoanType),
		Amount:             loan.Amount,
		InterestRate:       loan.InterestRate,
		TermMonths:         loan.TermMonths,
		MonthlyPayment:     loan.MonthlyPayment,
		OutstandingBalance: loan.OutstandingBalance,
		Status:             string(loan.Status),
		CreatedAt:          loan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          loan.UpdatedAt.Format(time.RFC3339),
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
