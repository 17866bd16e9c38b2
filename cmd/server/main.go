package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/controller"
	"github.com/naveenanimation20/api-labs/internal/adapter/http/middleware"
	"github.com/naveenanimation20/api-labs/internal/adapter/http/router"
	"github.com/naveenanimation20/api-labs/internal/adapter/repository/postgres"
	"github.com/naveenanimation20/api-labs/internal/config"
	"github.com/naveenanimation20/api-labs/internal/events"
	"github.com/naveenanimation20/api-labs/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	cancel()

	publisher, err := events.NewNATSPublisher(cfg.NATSURL)
	if err != nil {
		log.Fatalf("connect event bus: %v", err)
	}
	defer publisher.Close()

	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	loanRepo := postgres.NewLoanRepository(db)
	userRepo := postgres.NewUserRepository(db)

	accountService := services.NewAccountService(accountRepo, transactionRepo)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo, publisher)
	transferService := services.NewTransferService(accountRepo, transactionRepo, publisher)
	loanService := services.NewLoanService(loanRepo, publisher)

	authMiddleware := middleware.BearerAuth([]byte(cfg.JWTSecret), userRepo)

	handler := router.New(
		controller.NewAccountController(accountService),
		controller.NewTransactionController(transactionService),
		controller.NewTransferController(transferService),
		controller.NewLoanController(loanService),
		authMiddleware,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("banking api listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
