package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/logger"
)

type LoanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

const loanColumns = `id, user_id, loan_number, loan_type, amount, interest_rate, term_months, monthly_payment, outstanding_balance, status, disbursement_date, next_payment_date, created_at, updated_at`

func (r *LoanRepository) Create(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	logger.Info("loan repository create", logger.Fields{
		"userId":     loan.UserID,
		"loanNumber": loan.LoanNumber,
		"loanType":   loan.LoanType,
	})

	const query = `
INSERT INTO loans (user_id, loan_number, loan_type, amount, interest_rate, term_months, monthly_payment, outstanding_balance, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`

	var (
		id        string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := r.db.QueryRowContext(
		ctx,
		query,
		loan.UserID,
		loan.LoanNumber,
		loan.LoanType,
		loan.Amount,
		loan.InterestRate,
		loan.TermMonths,
		loan.MonthlyPayment,
		loan.OutstandingBalance,
		loan.Status,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		logger.Error("loan repository create failed", err, logger.Fields{
			"userId":     loan.UserID,
			"loanNumber": loan.LoanNumber,
		})
		return domain.Loan{}, fmt.Errorf("create loan: %w", err)
	}

	loan.ID = id
	loan.CreatedAt = createdAt
	loan.UpdatedAt = updatedAt
	return loan, nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (domain.Loan, error) {
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *LoanRepository) GetByIDForUser(ctx context.Context, id string, userID string) (domain.Loan, error) {
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 AND user_id = $2`
	return r.scanOne(ctx, query, id, userID)
}

func (r *LoanRepository) ListByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Error("loan repository list failed", err, logger.Fields{"userId": userID})
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loan row: %w", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loan rows: %w", err)
	}

	return loans, nil
}

func (r *LoanRepository) Update(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	logger.Info("loan repository update", logger.Fields{
		"loanId":             loan.ID,
		"status":             loan.Status,
		"outstandingBalance": loan.OutstandingBalance,
	})

	const query = `
UPDATE loans
SET status = $2,
    outstanding_balance = $3,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + loanColumns

	updated, err := r.scanOne(ctx, query, loan.ID, loan.Status, loan.OutstandingBalance)
	if err != nil {
		return domain.Loan{}, err
	}
	return updated, nil
}

func (r *LoanRepository) scanOne(ctx context.Context, query string, args ...any) (domain.Loan, error) {
	loan, err := scanLoan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Loan{}, domain.ErrRecordNotFound
		}
		return domain.Loan{}, fmt.Errorf("get loan: %w", err)
	}
	return loan, nil
}

func scanLoan(row rowScanner) (domain.Loan, error) {
	var (
		loan             domain.Loan
		disbursementDate sql.NullTime
		nextPaymentDate  sql.NullTime
	)

	err := row.Scan(
		&loan.ID,
		&loan.UserID,
		&loan.LoanNumber,
		&loan.LoanType,
		&loan.Amount,
		&loan.InterestRate,
		&loan.TermMonths,
		&loan.MonthlyPayment,
		&loan.OutstandingBalance,
		&loan.Status,
		&disbursementDate,
		&nextPaymentDate,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
	if err != nil {
		return domain.Loan{}, err
	}

	if disbursementDate.Valid {
		value := disbursementDate.Time
		loan.DisbursementDate = &value
	}
	if nextPaymentDate.Valid {
		value := nextPaymentDate.Time
		loan.NextPaymentDate = &value
	}

	return loan, nil
}
