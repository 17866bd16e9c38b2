package services_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/usecase/services"
)

type fakeLoanRepo struct {
	loans  map[string]domain.Loan
	nextID int
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[string]domain.Loan)}
}

func (r *fakeLoanRepo) Create(_ context.Context, loan domain.Loan) (domain.Loan, error) {
	r.nextID++
	loan.ID = "loan-" + strconv.Itoa(r.nextID)
	r.loans[loan.ID] = loan
	return loan, nil
}

func (r *fakeLoanRepo) GetByID(_ context.Context, id string) (domain.Loan, error) {
	loan, ok := r.loans[id]
	if !ok {
		return domain.Loan{}, domain.ErrRecordNotFound
	}
	return loan, nil
}

func (r *fakeLoanRepo) GetByIDForUser(_ context.Context, id string, userID string) (domain.Loan, error) {
	loan, ok := r.loans[id]
	if !ok || loan.UserID != userID {
		return domain.Loan{}, domain.ErrRecordNotFound
	}
	return loan, nil
}

func (r *fakeLoanRepo) ListByUser(_ context.Context, userID string) ([]domain.Loan, error) {
	var loans []domain.Loan
	for _, loan := range r.loans {
		if loan.UserID == userID {
			loans = append(loans, loan)
		}
	}
	return loans, nil
}

func (r *fakeLoanRepo) Update(_ context.Context, loan domain.Loan) (domain.Loan, error) {
	if _, ok := r.loans[loan.ID]; !ok {
		return domain.Loan{}, domain.ErrRecordNotFound
	}
	r.loans[loan.ID] = loan
	return loan, nil
}

func applyTestLoan(t *testing.T, svc *services.LoanService) models.LoanResponse {
	t.Helper()

	resp, err := svc.ApplyForLoan(context.Background(), "user-1", models.ApplyLoanRequest{
		LoanType:     "personal",
		Amount:       money("12000"),
		InterestRate: money("6"),
		TermMonths:   12,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	return *resp.Data
}

func TestLoanServiceApplyComputesAmortizedPayment(t *testing.T) {
	svc := services.NewLoanService(newFakeLoanRepo(), nil)

	loan := applyTestLoan(t, svc)

	// 12000 at 6% APR over 12 months: fixed payment of 1032.80.
	if got := loan.MonthlyPayment.StringFixed(2); got != "1032.80" {
		t.Fatalf("expected monthly payment 1032.80, got %s", got)
	}
	if !loan.OutstandingBalance.Equal(money("12000")) {
		t.Fatalf("expected outstanding 12000, got %s", loan.OutstandingBalance)
	}
	if loan.Status != "pending" {
		t.Fatalf("expected pending status, got %s", loan.Status)
	}
	if loan.LoanNumber == "" {
		t.Fatal("expected a generated loan number")
	}
}

func TestLoanServiceApplyZeroRateSplitsPrincipal(t *testing.T) {
	svc := services.NewLoanService(newFakeLoanRepo(), nil)

	resp, err := svc.ApplyForLoan(context.Background(), "user-1", models.ApplyLoanRequest{
		LoanType:     "auto",
		Amount:       money("1200"),
		InterestRate: money("0"),
		TermMonths:   12,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := resp.Data.MonthlyPayment.StringFixed(2); got != "100.00" {
		t.Fatalf("expected monthly payment 100.00, got %s", got)
	}
}

func TestLoanServiceApplyValidationError(t *testing.T) {
	svc := services.NewLoanService(newFakeLoanRepo(), nil)

	_, err := svc.ApplyForLoan(context.Background(), "user-1", models.ApplyLoanRequest{
		LoanType:   "mortgage",
		Amount:     money("-5"),
		TermMonths: 0,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoanServicePaymentExceedingOutstandingRejected(t *testing.T) {
	svc := services.NewLoanService(newFakeLoanRepo(), nil)
	loan := applyTestLoan(t, svc)

	resp, err := svc.MakeLoanPayment(context.Background(), "user-1", loan.ID, models.LoanPaymentRequest{
		Amount: money("20000"),
	})
	if err != domain.ErrInvalidPayment {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
	if resp.Message != "Payment amount exceeds outstanding balance" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestLoanServicePaymentsReachPaidState(t *testing.T) {
	repo := newFakeLoanRepo()
	svc := services.NewLoanService(repo, nil)
	loan := applyTestLoan(t, svc)

	payment := models.LoanPaymentRequest{Amount: money("1032.80")}
	for i := 0; i < 11; i++ {
		resp, err := svc.MakeLoanPayment(context.Background(), "user-1", loan.ID, payment)
		if err != nil {
			t.Fatalf("payment %d: expected nil error, got %v", i+1, err)
		}
		if resp.Data.Status == "paid" {
			t.Fatalf("loan must not be paid after %d payments", i+1)
		}
	}

	// 11 x 1032.80 leaves 639.20; a full installment overshoots and must
	// be rejected, the exact remainder settles the loan.
	if got := repo.loans[loan.ID].OutstandingBalance; !got.Equal(money("639.20")) {
		t.Fatalf("expected outstanding 639.20, got %s", got)
	}

	if _, err := svc.MakeLoanPayment(context.Background(), "user-1", loan.ID, payment); err != domain.ErrInvalidPayment {
		t.Fatalf("expected ErrInvalidPayment for overshooting final payment, got %v", err)
	}

	resp, err := svc.MakeLoanPayment(context.Background(), "user-1", loan.ID, models.LoanPaymentRequest{
		Amount: money("639.20"),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Status != "paid" {
		t.Fatalf("expected paid status, got %s", resp.Data.Status)
	}
	if !resp.Data.OutstandingBalance.IsZero() {
		t.Fatalf("expected zero outstanding, got %s", resp.Data.OutstandingBalance)
	}
}

func TestLoanServicePaymentOnForeignLoanNotFound(t *testing.T) {
	svc := services.NewLoanService(newFakeLoanRepo(), nil)
	loan := applyTestLoan(t, svc)

	_, err := svc.MakeLoanPayment(context.Background(), "user-2", loan.ID, models.LoanPaymentRequest{
		Amount: money("100"),
	})
	if err != domain.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoanServiceUpdateStatusPublishesEvent(t *testing.T) {
	repo := newFakeLoanRepo()
	publisher := &fakePublisher{}
	svc := services.NewLoanService(repo, publisher)
	loan := applyTestLoan(t, svc)

	resp, err := svc.UpdateLoanStatus(context.Background(), loan.ID, models.UpdateLoanStatusRequest{
		Status: "approved",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Status != "approved" {
		t.Fatalf("expected approved status, got %s", resp.Data.Status)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(publisher.events))
	}
	event := publisher.events[0]
	if event.Topic != domain.UserTopic("user-1") || event.Event.Type != domain.EventLoanStatusUpdated {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestLoanServiceGetLoanScopedToOwner(t *testing.T) {
	svc := services.NewLoanService(newFakeLoanRepo(), nil)
	loan := applyTestLoan(t, svc)

	if _, err := svc.GetLoan(context.Background(), "user-2", loan.ID); err != domain.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	resp, err := svc.GetLoan(context.Background(), "user-1", loan.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.ID != loan.ID {
		t.Fatalf("expected loan %s, got %s", loan.ID, resp.Data.ID)
	}
}
