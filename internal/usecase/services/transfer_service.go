package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/commons"
	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/logger"
	"github.com/shopspring/decimal"
)

type TransferService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
	publisher       domain.EventPublisher
}

func NewTransferService(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	publisher domain.EventPublisher,
) *TransferService {
	return &TransferService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

// Transfer moves value between two same-currency accounts on behalf of the
// authenticated user. Preconditions are checked in order (source ownership,
// destination existence, funds); the paired ledger entries and both balance
// mutations are posted in one database transaction. No deduplication is
// applied: resubmitting an identical request posts again.
func (s *TransferService) Transfer(ctx context.Context, userID string, req models.CreateTransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	fromAccount, err := s.accountRepo.GetByIDForUser(ctx, strings.TrimSpace(req.FromAccountID), userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Source account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("Transfer failed", "Unable to process transfer right now"), err
	}

	toAccount, err := s.accountRepo.GetByID(ctx, strings.TrimSpace(req.ToAccountID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("Transfer failed", "Unable to process transfer right now"), err
	}

	amount := req.Amount
	if fromAccount.Balance.LessThan(amount) {
		err := domain.ErrInsufficientBalance
		return commons.ErrorResponse[models.TransferResponse]("Insufficient balance", err.Error()), err
	}

	description := strings.TrimSpace(req.Description)
	debitDescription := description
	if debitDescription == "" {
		debitDescription = "Transfer to " + toAccount.AccountNumber
	}
	creditDescription := description
	if creditDescription == "" {
		creditDescription = "Transfer from " + fromAccount.AccountNumber
	}

	var createdDebit, createdCredit domain.Transaction
	for attempt := 0; attempt < 5; attempt++ {
		debit := domain.Transaction{
			AccountID:       fromAccount.ID,
			TransactionType: domain.TransactionTypeTransfer,
			Amount:          amount,
			Currency:        fromAccount.Currency,
			Description:     &debitDescription,
			ReferenceNumber: generateReferenceNumber(),
			Status:          domain.TransactionStatusCompleted,
			BalanceAfter:    decimal.NewNullDecimal(fromAccount.Balance.Sub(amount)),
			ToAccountID:     &toAccount.ID,
		}
		credit := domain.Transaction{
			AccountID:       toAccount.ID,
			TransactionType: domain.TransactionTypeTransfer,
			Amount:          amount,
			Currency:        toAccount.Currency,
			Description:     &creditDescription,
			ReferenceNumber: generateReferenceNumber(),
			Status:          domain.TransactionStatusCompleted,
			BalanceAfter:    decimal.NewNullDecimal(toAccount.Balance.Add(amount)),
			ToAccountID:     &fromAccount.ID,
		}

		createdDebit, createdCredit, err = s.transactionRepo.PostTransfer(ctx, debit, credit)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		logger.Error("transfer service posting failed", err, logger.Fields{
			"fromAccountId": fromAccount.ID,
			"toAccountId":   toAccount.ID,
		})
		return commons.ErrorResponse[models.TransferResponse]("Transfer failed", "Unable to complete transfer posting"), err
	}

	response := models.TransferResponse{
		DebitTransaction:  mapTransactionToResponse(createdDebit),
		CreditTransaction: mapTransactionToResponse(createdCredit),
	}

	s.publish(ctx, domain.UserTopic(fromAccount.UserID), domain.Event{
		Type:    domain.EventTransferCompleted,
		Payload: response.DebitTransaction,
	})
	s.publish(ctx, domain.UserTopic(toAccount.UserID), domain.Event{
		Type:    domain.EventTransferReceived,
		Payload: response.CreditTransaction,
	})

	logger.Info("transfer service transfer success", logger.Fields{
		"debitTransactionId":  createdDebit.ID,
		"creditTransactionId": createdCredit.ID,
		"amount":              amount,
	})

	return commons.SuccessResponse("Transfer initiated successfully", response), nil
}

func (s *TransferService) GetTransferStatus(ctx context.Context, id string) (commons.Response[models.TransferStatusResponse], error) {
	transaction, err := s.transactionRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferStatusResponse]("Transfer not found"), err
		}
		return commons.ErrorResponse[models.TransferStatusResponse]("Failed to fetch transfer status"), err
	}

	response := models.TransferStatusResponse{
		Status:          string(transaction.Status),
		ReferenceNumber: transaction.ReferenceNumber,
		Amount:          transaction.Amount,
		CreatedAt:       transaction.CreatedAt.Format(time.RFC3339),
	}

	return commons.SuccessResponse("Transfer status fetched", response), nil
}

// publish is fire-and-forget: notification failures are logged and never
// affect the committed transfer.
func (s *TransferService) publish(ctx context.Context, topic string, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		logger.Error("transfer service event publish failed", err, logger.Fields{
			"topic": topic,
			"event": event.Type,
		})
	}
}
