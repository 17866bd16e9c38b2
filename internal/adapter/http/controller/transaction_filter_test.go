package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/naveenanimation20/api-labs/internal/domain"
)

func TestTransactionFilterFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/banking/transactions?accountId=acc-1&type=debit&startDate=2026-01-01&endDate=2026-01-31&limit=25", nil)

	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if filter.AccountID != "acc-1" {
		t.Fatalf("expected accountId acc-1, got %s", filter.AccountID)
	}
	if filter.Type != domain.TransactionTypeDebit {
		t.Fatalf("expected debit type, got %s", filter.Type)
	}
	if filter.Limit != 25 {
		t.Fatalf("expected limit 25, got %d", filter.Limit)
	}
	if filter.StartDate == nil || !filter.StartDate.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date %v", filter.StartDate)
	}
	if filter.EndDate == nil || filter.EndDate.Day() != 31 || filter.EndDate.Hour() != 23 {
		t.Fatalf("bare end date must cover the whole day, got %v", filter.EndDate)
	}
}

func TestTransactionFilterFromQueryRFC3339(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/banking/transactions?startDate=2026-02-01T10%3A30%3A00Z", nil)

	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if filter.StartDate == nil || filter.StartDate.Hour() != 10 {
		t.Fatalf("unexpected start date %v", filter.StartDate)
	}
}

func TestTransactionFilterFromQueryRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown type": "type=wire",
		"bad date":     "startDate=yesterday",
		"bad limit":    "limit=-3",
	}

	for name, query := range cases {
		r := httptest.NewRequest("GET", "/api/v1/banking/transactions?"+query, nil)
		if _, err := transactionFilterFromQuery(r); err == nil {
			t.Errorf("%s: expected error for query %q", name, query)
		}
	}
}
