package services

import (
	"context"
	"errors"
	"strings"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/commons"
	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/logger"
)

type TransactionService struct {
	transactionRepo domain.TransactionRepository
	accountRepo     domain.AccountRepository
	publisher       domain.EventPublisher
}

func NewTransactionService(
	transactionRepo domain.TransactionRepository,
	accountRepo domain.AccountRepository,
	publisher domain.EventPublisher,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		publisher:       publisher,
	}
}

// CreateTransaction records a raw ledger entry without touching the account
// balance; the transfer flow is the only balance-mutating path.
func (s *TransactionService) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByID(ctx, strings.TrimSpace(req.AccountID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("Failed to create transaction"), err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = account.Currency
	}

	transaction := domain.Transaction{
		AccountID:       account.ID,
		TransactionType: domain.TransactionType(strings.ToLower(strings.TrimSpace(req.TransactionType))),
		Amount:          req.Amount,
		Currency:        currency,
		Status:          domain.TransactionStatusPending,
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		transaction.Description = &description
	}

	var created domain.Transaction
	for attempt := 0; attempt < 5; attempt++ {
		transaction.ReferenceNumber = generateReferenceNumber()
		created, err = s.transactionRepo.Create(ctx, transaction)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		logger.Error("transaction service create failed", err, logger.Fields{
			"accountId": account.ID,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Failed to create transaction"), err
	}

	response := mapTransactionToResponse(created)
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, domain.AccountTopic(account.ID), domain.Event{
			Type:    domain.EventTransactionCreated,
			Payload: response,
		}); err != nil {
			logger.Error("transaction service event publish failed", err, logger.Fields{
				"accountId": account.ID,
			})
		}
	}

	return commons.SuccessResponse("Transaction created successfully", response), nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id string) (commons.Response[models.TransactionResponse], error) {
	transaction, err := s.transactionRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Transaction not found"), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("Failed to fetch transaction"), err
	}

	return commons.SuccessResponse("Transaction fetched", mapTransactionToResponse(transaction)), nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (commons.Response[models.TransactionListResponse], error) {
	transactions, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		return commons.ErrorResponse[models.TransactionListResponse]("Failed to fetch transactions"), err
	}

	response := models.TransactionListResponse{
		Transactions: make([]models.TransactionResponse, 0, len(transactions)),
	}
	for _, transaction := range transactions {
		response.Transactions = append(response.Transactions, mapTransactionToResponse(transaction))
	}

	return commons.SuccessResponse("Transactions fetched", response), nil
}
