package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/adapter/repository/postgres"
	"github.com/naveenanimation20/api-labs/internal/auth"
	"github.com/naveenanimation20/api-labs/internal/config"
	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/usecase/services"
)

type seedUser struct {
	name     string
	email    string
	password string
	role     string
}

// Seeds a pair of practice users with funded accounts and a pending loan,
// then prints ready-to-use bearer tokens.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	loanRepo := postgres.NewLoanRepository(db)

	accountService := services.NewAccountService(accountRepo, transactionRepo)
	loanService := services.NewLoanService(loanRepo, nil)

	users := []seedUser{
		{name: "Test User", email: "test@apilabs.com", password: "password123", role: "user"},
		{name: "Admin User", email: "admin@apilabs.com", password: "admin123", role: "admin"},
	}

	for i, candidate := range users {
		user, err := ensureUser(ctx, userRepo, candidate)
		if err != nil {
			log.Fatalf("seed user %s: %v", candidate.email, err)
		}

		checking, err := accountService.CreateAccount(ctx, user.ID, models.CreateAccountRequest{
			AccountType:    "checking",
			Currency:       "USD",
			InitialDeposit: decimal.NewFromInt(5000),
		})
		if err != nil {
			log.Fatalf("seed checking account for %s: %v", user.Email, err)
		}

		savings, err := accountService.CreateAccount(ctx, user.ID, models.CreateAccountRequest{
			AccountType:    "savings",
			Currency:       "USD",
			InitialDeposit: decimal.NewFromInt(10000),
		})
		if err != nil {
			log.Fatalf("seed savings account for %s: %v", user.Email, err)
		}

		if i == 0 {
			loan, err := loanService.ApplyForLoan(ctx, user.ID, models.ApplyLoanRequest{
				LoanType:     "personal",
				Amount:       decimal.NewFromInt(12000),
				InterestRate: decimal.NewFromInt(6),
				TermMonths:   12,
			})
			if err != nil {
				log.Fatalf("seed loan for %s: %v", user.Email, err)
			}
			log.Printf("created loan %s (monthly payment %s)", loan.Data.LoanNumber, loan.Data.MonthlyPayment)
		}

		token, err := auth.GenerateToken([]byte(cfg.JWTSecret), user.ID, user.Email, cfg.TokenTTL)
		if err != nil {
			log.Fatalf("issue token for %s: %v", user.Email, err)
		}

		fmt.Printf("\nuser:     %s (%s)\n", user.Email, user.ID)
		fmt.Printf("checking: %s\n", checking.Data.AccountNumber)
		fmt.Printf("savings:  %s\n", savings.Data.AccountNumber)
		fmt.Printf("token:    %s\n", token)
	}

	log.Println("seeding completed")
}

func ensureUser(ctx context.Context, repo domain.UserRepository, candidate seedUser) (domain.User, error) {
	if existing, err := repo.GetByEmail(ctx, candidate.email); err == nil {
		return existing, nil
	}

	hash, err := auth.HashPassword(candidate.password)
	if err != nil {
		return domain.User{}, err
	}

	return repo.Create(ctx, domain.User{
		Name:         candidate.name,
		Email:        candidate.email,
		PasswordHash: hash,
		Role:         candidate.role,
	})
}
