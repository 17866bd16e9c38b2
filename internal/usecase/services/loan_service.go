package services

import (
	"context"
	"errors"
	"strings"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/commons"
	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/logger"
	"github.com/shopspring/decimal"
)

type LoanService struct {
	loanRepo  domain.LoanRepository
	publisher domain.EventPublisher
}

func NewLoanService(loanRepo domain.LoanRepository, publisher domain.EventPublisher) *LoanService {
	return &LoanService{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// monthlyPayment computes the fixed amortized payment
// M = P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate, entirely in
// decimal arithmetic. A zero-interest loan degrades to principal/term.
func monthlyPayment(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	term := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.IsZero() {
		return principal.Div(term).Round(2)
	}

	one := decimal.NewFromInt(1)
	monthlyRate := annualRatePercent.Div(decimal.NewFromInt(1200))
	compounded := one.Add(monthlyRate).Pow(term)

	return principal.Mul(monthlyRate).Mul(compounded).Div(compounded.Sub(one)).Round(2)
}

func (s *LoanService) ApplyForLoan(ctx context.Context, userID string, req models.ApplyLoanRequest) (commons.Response[models.LoanResponse], error) {
	logger.Info("loan service apply request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.LoanResponse]("validation failed", err.Error()), err
	}

	loan := domain.Loan{
		UserID:             userID,
		LoanType:           domain.LoanType(strings.ToLower(strings.TrimSpace(req.LoanType))),
		Amount:             req.Amount,
		InterestRate:       req.InterestRate,
		TermMonths:         req.TermMonths,
		MonthlyPayment:     monthlyPayment(req.Amount, req.InterestRate, req.TermMonths),
		OutstandingBalance: req.Amount,
		Status:             domain.LoanStatusPending,
	}

	var created domain.Loan
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		loan.LoanNumber = generateLoanNumber()
		created, err = s.loanRepo.Create(ctx, loan)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		logger.Error("loan service apply failed", err, logger.Fields{"userId": userID})
		return commons.ErrorResponse[models.LoanResponse]("Failed to apply for loan"), err
	}

	logger.Info("loan service apply success", logger.Fields{
		"loanId":         created.ID,
		"loanNumber":     created.LoanNumber,
		"monthlyPayment": created.MonthlyPayment,
	})

	return commons.SuccessResponse("Loan application submitted successfully", mapLoanToResponse(created)), nil
}

func (s *LoanService) ListLoans(ctx context.Context, userID string) (commons.Response[models.LoanListResponse], error) {
	loans, err := s.loanRepo.ListByUser(ctx, userID)
	if err != nil {
		return commons.ErrorResponse[models.LoanListResponse]("Failed to fetch loans"), err
	}

	response := models.LoanListResponse{Loans: make([]models.LoanResponse, 0, len(loans))}
	for _, loan := range loans {
		response.Loans = append(response.Loans, mapLoanToResponse(loan))
	}

	return commons.SuccessResponse("Loans fetched", response), nil
}

func (s *LoanService) GetLoan(ctx context.Context, userID string, id string) (commons.Response[models.LoanResponse], error) {
	loan, err := s.loanRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanResponse]("Loan not found"), err
		}
		return commons.ErrorResponse[models.LoanResponse]("Failed to fetch loan"), err
	}

	return commons.SuccessResponse("Loan fetched", mapLoanToResponse(loan)), nil
}

func (s *LoanService) UpdateLoanStatus(ctx context.Context, id string, req models.UpdateLoanStatusRequest) (commons.Response[models.LoanResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.LoanResponse]("validation failed", err.Error()), err
	}

	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanResponse]("Loan not found"), err
		}
		return commons.ErrorResponse[models.LoanResponse]("Failed to update loan status"), err
	}

	loan.Status = domain.LoanStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	updated, err := s.loanRepo.Update(ctx, loan)
	if err != nil {
		return commons.ErrorResponse[models.LoanResponse]("Failed to update loan status"), err
	}

	s.publish(ctx, domain.UserTopic(updated.UserID), domain.Event{
		Type: domain.EventLoanStatusUpdated,
		Payload: map[string]string{
			"loanId": updated.ID,
			"status": string(updated.Status),
		},
	})

	return commons.SuccessResponse("Loan status updated successfully", mapLoanToResponse(updated)), nil
}

// MakeLoanPayment decrements the outstanding balance. A payment may never
// exceed what is outstanding; when the remainder rounds to zero at cent
// granularity the loan reaches its terminal paid state.
func (s *LoanService) MakeLoanPayment(ctx context.Context, userID string, id string, req models.LoanPaymentRequest) (commons.Response[models.LoanResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.LoanResponse]("validation failed", err.Error()), err
	}

	loan, err := s.loanRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanResponse]("Loan not found"), err
		}
		return commons.ErrorResponse[models.LoanResponse]("Failed to make payment"), err
	}

	if req.Amount.GreaterThan(loan.OutstandingBalance) {
		err := domain.ErrInvalidPayment
		return commons.ErrorResponse[models.LoanResponse]("Payment amount exceeds outstanding balance"), err
	}

	loan.OutstandingBalance = loan.OutstandingBalance.Sub(req.Amount)
	if loan.OutstandingBalance.Round(2).IsZero() {
		loan.OutstandingBalance = decimal.Zero
		loan.Status = domain.LoanStatusPaid
	}

	updated, err := s.loanRepo.Update(ctx, loan)
	if err != nil {
		return commons.ErrorResponse[models.LoanResponse]("Failed to make payment"), err
	}

	logger.Info("loan service payment success", logger.Fields{
		"loanId":             updated.ID,
		"outstandingBalance": updated.OutstandingBalance,
		"status":             updated.Status,
	})

	return commons.SuccessResponse("Payment successful", mapLoanToResponse(updated)), nil
}

func (s *LoanService) publish(ctx context.Context, topic string, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		logger.Error("loan service event publish failed", err, logger.Fields{
			"topic": topic,
			"event": event.Type,
		})
	}
}
