package domain

import "context"

type LoanRepository interface {
	Create(ctx context.Context, loan Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	GetByIDForUser(ctx context.Context, id string, userID string) (Loan, error)
	ListByUser(ctx context.Context, userID string) ([]Loan, error)
	Update(ctx context.Context, loan Loan) (Loan, error)
}
