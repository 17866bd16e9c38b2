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

type AccountService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
}

func NewAccountService(accountRepo domain.AccountRepository, transactionRepo domain.TransactionRepository) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, userID string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	accountType := strings.ToLower(strings.TrimSpace(req.AccountType))
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	account := domain.Account{
		UserID:      userID,
		AccountType: domain.AccountType(accountType),
		Balance:     req.InitialDeposit,
		Currency:    currency,
		Status:      domain.AccountStatusActive,
	}

	var created domain.Account
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		account.AccountNumber = generateAccountNumber(accountType)
		created, err = s.accountRepo.Create(ctx, account)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		logger.Error("account service create account failed", err, logger.Fields{"userId": userID})
		return commons.ErrorResponse[models.AccountResponse]("Failed to create account", "Unable to create account right now"), err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId":     created.ID,
		"accountNumber": created.AccountNumber,
	})

	return commons.SuccessResponse("Account created successfully", mapAccountToResponse(created)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context, userID string) (commons.Response[models.AccountListResponse], error) {
	accounts, err := s.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return commons.ErrorResponse[models.AccountListResponse]("Failed to fetch accounts"), err
	}

	response := models.AccountListResponse{Accounts: make([]models.AccountResponse, 0, len(accounts))}
	for _, account := range accounts {
		response.Accounts = append(response.Accounts, mapAccountToResponse(account))
	}

	return commons.SuccessResponse("Accounts fetched", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, userID string, id string) (commons.Response[models.AccountResponse], error) {
	account, err := s.accountRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("Failed to fetch account"), err
	}

	return commons.SuccessResponse("Account fetched", mapAccountToResponse(account)), nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, userID string, id string, req models.UpdateAccountRequest) (commons.Response[models.AccountResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	status := domain.AccountStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	account, err := s.accountRepo.UpdateStatus(ctx, id, userID, status)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("Failed to update account"), err
	}

	return commons.SuccessResponse("Account updated successfully", mapAccountToResponse(account)), nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, userID string, id string) (commons.Response[struct{}], error) {
	if err := s.accountRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[struct{}]("Account not found"), err
		}
		return commons.ErrorResponse[struct{}]("Failed to delete account"), err
	}

	return commons.SuccessResponse("Account deleted successfully", struct{}{}), nil
}

func (s *AccountService) GetBalance(ctx context.Context, userID string, id string) (commons.Response[models.BalanceResponse], error) {
	account, err := s.accountRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.BalanceResponse]("Failed to fetch balance"), err
	}

	response := models.BalanceResponse{
		Balance:       account.Balance,
		Currency:      account.Currency,
		AccountNumber: account.AccountNumber,
	}

	return commons.SuccessResponse("Balance fetched", response), nil
}

func (s *AccountService) GetStatement(ctx context.Context, userID string, id string) (commons.Response[models.StatementResponse], error) {
	account, err := s.accountRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.StatementResponse]("Failed to fetch statement"), err
	}

	transactions, err := s.transactionRepo.ListByAccount(ctx, account.ID, 50)
	if err != nil {
		return commons.ErrorResponse[models.StatementResponse]("Failed to fetch statement"), err
	}

	response := models.StatementResponse{
		Account: models.StatementAccount{
			AccountNumber: account.AccountNumber,
			AccountType:   string(account.AccountType),
			Balance:       account.Balance,
		},
		Transactions: make([]models.TransactionResponse, 0, len(transactions)),
	}
	for _, transaction := range transactions {
		response.Transactions = append(response.Transactions, mapTransactionToResponse(transaction))
	}

	return commons.SuccessResponse("Statement fetched", response), nil
}
