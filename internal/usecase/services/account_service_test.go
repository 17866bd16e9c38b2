package services_test

import (
	"context"
	"testing"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/usecase/services"
)

func accountFixture() (*services.AccountService, *fakeAccountRepo, *fakeTransactionRepo) {
	accounts := newFakeAccountRepo()
	transactions := newFakeTransactionRepo(accounts)
	return services.NewAccountService(accounts, transactions), accounts, transactions
}

func TestAccountServiceCreateAccountDefaults(t *testing.T) {
	svc, _, _ := accountFixture()

	resp, err := svc.CreateAccount(context.Background(), "user-1", models.CreateAccountRequest{
		AccountType: "savings",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}

	account := *resp.Data
	if account.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %s", account.Currency)
	}
	if account.Status != "active" {
		t.Fatalf("expected active status, got %s", account.Status)
	}
	if !account.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", account.Balance)
	}
	if len(account.AccountNumber) < 4 || account.AccountNumber[:2] != "SA" {
		t.Fatalf("expected SA-prefixed account number, got %s", account.AccountNumber)
	}
}

func TestAccountServiceCreateAccountInvalidType(t *testing.T) {
	svc, _, _ := accountFixture()

	_, err := svc.CreateAccount(context.Background(), "user-1", models.CreateAccountRequest{
		AccountType: "offshore",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown account type")
	}
}

func TestAccountServiceGetAccountScopedToOwner(t *testing.T) {
	svc, accounts, _ := accountFixture()
	accounts.accounts["acc-1"] = domain.Account{
		ID:       "acc-1",
		UserID:   "user-1",
		Balance:  money("100.00"),
		Currency: "USD",
		Status:   domain.AccountStatusActive,
	}

	if _, err := svc.GetAccount(context.Background(), "user-2", "acc-1"); err != domain.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound for foreign account, got %v", err)
	}

	resp, err := svc.GetAccount(context.Background(), "user-1", "acc-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.ID != "acc-1" {
		t.Fatalf("expected acc-1, got %s", resp.Data.ID)
	}
}

func TestAccountServiceUpdateAccountStatus(t *testing.T) {
	svc, accounts, _ := accountFixture()
	accounts.accounts["acc-1"] = domain.Account{
		ID:     "acc-1",
		UserID: "user-1",
		Status: domain.AccountStatusActive,
	}

	resp, err := svc.UpdateAccount(context.Background(), "user-1", "acc-1", models.UpdateAccountRequest{
		Status: "frozen",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Status != "frozen" {
		t.Fatalf("expected frozen, got %s", resp.Data.Status)
	}

	if _, err := svc.UpdateAccount(context.Background(), "user-1", "acc-1", models.UpdateAccountRequest{Status: "suspended"}); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}

func TestAccountServiceGetStatementIncludesTransactions(t *testing.T) {
	svc, accounts, transactions := accountFixture()
	accounts.accounts["acc-1"] = domain.Account{
		ID:            "acc-1",
		UserID:        "user-1",
		AccountNumber: "CH9000",
		AccountType:   domain.AccountTypeChecking,
		Balance:       money("250.00"),
		Currency:      "USD",
		Status:        domain.AccountStatusActive,
	}
	transactions.store(domain.Transaction{
		AccountID:       "acc-1",
		TransactionType: domain.TransactionTypeCredit,
		Amount:          money("250.00"),
		Currency:        "USD",
		ReferenceNumber: "TXN1",
		Status:          domain.TransactionStatusCompleted,
	})

	resp, err := svc.GetStatement(context.Background(), "user-1", "acc-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Account.AccountNumber != "CH9000" {
		t.Fatalf("unexpected account number %s", resp.Data.Account.AccountNumber)
	}
	if len(resp.Data.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(resp.Data.Transactions))
	}
}

func TestAccountServiceDeleteAccount(t *testing.T) {
	svc, accounts, _ := accountFixture()
	accounts.accounts["acc-1"] = domain.Account{ID: "acc-1", UserID: "user-1"}

	if _, err := svc.DeleteAccount(context.Background(), "user-2", "acc-1"); err != domain.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound for foreign delete, got %v", err)
	}

	if _, err := svc.DeleteAccount(context.Background(), "user-1", "acc-1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok := accounts.accounts["acc-1"]; ok {
		t.Fatal("expected account removed")
	}
}
