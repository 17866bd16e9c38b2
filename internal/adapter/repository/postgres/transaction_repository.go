package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/logger"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, account_id, transaction_type, amount, currency, description, reference_number, status, balance_after, to_account_id, created_at, updated_at`

const insertTransactionQuery = `
INSERT INTO transactions (account_id, transaction_type, amount, currency, description, reference_number, status, balance_after, to_account_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`

func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	logger.Info("transaction repository create", logger.Fields{
		"accountId":       transaction.AccountID,
		"transactionType": transaction.TransactionType,
		"referenceNumber": transaction.ReferenceNumber,
	})

	created, err := insertTransaction(ctx, r.db, transaction)
	if err != nil {
		logger.Error("transaction repository create failed", err, logger.Fields{
			"accountId":       transaction.AccountID,
			"referenceNumber": transaction.ReferenceNumber,
		})
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	return created, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (domain.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	transaction, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, domain.ErrRecordNotFound
		}
		logger.Error("transaction repository get failed", err, logger.Fields{"transactionId": id})
		return domain.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := make([]any, 0, 4)

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		query += ` AND account_id = $` + strconv.Itoa(len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND transaction_type = $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND created_at <= $` + strconv.Itoa(len(args))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	args = append(args, limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))

	return r.queryMany(ctx, query, args...)
}

func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}

	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.queryMany(ctx, query, accountID, limit)
}

// PostTransfer runs the four mutating writes of a transfer as one database
// transaction: a mid-sequence failure can never leave one leg posted
// without its counterpart.
func (r *TransactionRepository) PostTransfer(ctx context.Context, debit domain.Transaction, credit domain.Transaction) (domain.Transaction, domain.Transaction, error) {
	logger.Info("transaction repository post transfer", logger.Fields{
		"fromAccountId":  debit.AccountID,
		"toAccountId":    credit.AccountID,
		"amount":         debit.Amount,
		"debitReference": debit.ReferenceNumber,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("transaction repository begin tx failed", err, nil)
		return domain.Transaction{}, domain.Transaction{}, fmt.Errorf("begin transfer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const debitQuery = `
UPDATE accounts
SET balance = balance - $2::numeric, updated_at = NOW()
WHERE id = $1
  AND status = 'active'
  AND balance >= $2::numeric`
	if err = execRequiredRows(ctx, tx, debitQuery, debit.AccountID, debit.Amount); err != nil {
		return domain.Transaction{}, domain.Transaction{}, err
	}

	const creditQuery = `
UPDATE accounts
SET balance = balance + $2::numeric, updated_at = NOW()
WHERE id = $1
  AND status = 'active'`
	if err = execRequiredRows(ctx, tx, creditQuery, credit.AccountID, credit.Amount); err != nil {
		return domain.Transaction{}, domain.Transaction{}, err
	}

	var createdDebit, createdCredit domain.Transaction
	if createdDebit, err = insertTransaction(ctx, tx, debit); err != nil {
		return domain.Transaction{}, domain.Transaction{}, fmt.Errorf("insert debit entry: %w", err)
	}
	if createdCredit, err = insertTransaction(ctx, tx, credit); err != nil {
		return domain.Transaction{}, domain.Transaction{}, fmt.Errorf("insert credit entry: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("transaction repository commit tx failed", err, nil)
		return domain.Transaction{}, domain.Transaction{}, fmt.Errorf("commit transfer transaction: %w", err)
	}

	logger.Info("transaction repository post transfer success", logger.Fields{
		"debitTransactionId":  createdDebit.ID,
		"creditTransactionId": createdCredit.ID,
	})
	return createdDebit, createdCredit, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertTransaction(ctx context.Context, db execer, transaction domain.Transaction) (domain.Transaction, error) {
	var (
		id        string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := db.QueryRowContext(
		ctx,
		insertTransactionQuery,
		transaction.AccountID,
		transaction.TransactionType,
		transaction.Amount,
		transaction.Currency,
		transaction.Description,
		transaction.ReferenceNumber,
		transaction.Status,
		transaction.BalanceAfter,
		transaction.ToAccountID,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		return domain.Transaction{}, err
	}

	transaction.ID = id
	transaction.CreatedAt = createdAt
	transaction.UpdatedAt = updatedAt
	return transaction, nil
}

func (r *TransactionRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("transaction repository list failed", err, nil)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var (
		transaction domain.Transaction
		description sql.NullString
		toAccountID sql.NullString
	)

	err := row.Scan(
		&transaction.ID,
		&transaction.AccountID,
		&transaction.TransactionType,
		&transaction.Amount,
		&transaction.Currency,
		&description,
		&transaction.ReferenceNumber,
		&transaction.Status,
		&transaction.BalanceAfter,
		&toAccountID,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}

	if description.Valid {
		value := description.String
		transaction.Description = &value
	}
	if toAccountID.Valid {
		value := toAccountID.String
		transaction.ToAccountID = &value
	}

	return transaction, nil
}

func execRequiredRows(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("execute transfer statement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if rows == 0 {
		return errors.New("transfer posting failed: account not found, inactive, or insufficient balance")
	}
	return nil
}
