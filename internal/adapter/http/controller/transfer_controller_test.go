package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/controller"
	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/commons"
	"github.com/naveenanimation20/api-labs/internal/domain"
)

type transferServiceStub struct {
	transferResp commons.Response[models.TransferResponse]
	transferErr  error
	statusResp   commons.Response[models.TransferStatusResponse]
	statusErr    error
}

func (s transferServiceStub) Transfer(context.Context, string, models.CreateTransferRequest) (commons.Response[models.TransferResponse], error) {
	return s.transferResp, s.transferErr
}

func (s transferServiceStub) GetTransferStatus(context.Context, string) (commons.Response[models.TransferStatusResponse], error) {
	return s.statusResp, s.statusErr
}

func newTransferMux(stub transferServiceStub) *http.ServeMux {
	mux := http.NewServeMux()
	controller.NewTransferController(stub).RegisterRoutes(mux, nil)
	return mux
}

func TestTransferControllerCreateSuccess(t *testing.T) {
	mux := newTransferMux(transferServiceStub{
		transferResp: commons.SuccessResponse("Transfer initiated successfully", models.TransferResponse{}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banking/transfers", strings.NewReader(`{"fromAccountId":"a","toAccountId":"b","amount":"10"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body commons.Response[models.TransferResponse]
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success envelope")
	}
}

func TestTransferControllerCreateInsufficientBalance(t *testing.T) {
	mux := newTransferMux(transferServiceStub{
		transferResp: commons.ErrorResponse[models.TransferResponse]("Insufficient balance"),
		transferErr:  domain.ErrInsufficientBalance,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banking/transfers", strings.NewReader(`{"fromAccountId":"a","toAccountId":"b","amount":"10"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferControllerCreateSourceNotFound(t *testing.T) {
	mux := newTransferMux(transferServiceStub{
		transferResp: commons.ErrorResponse[models.TransferResponse]("Source account not found"),
		transferErr:  domain.ErrRecordNotFound,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banking/transfers", strings.NewReader(`{"fromAccountId":"a","toAccountId":"b","amount":"10"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransferControllerCreateMalformedBody(t *testing.T) {
	mux := newTransferMux(transferServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banking/transfers", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferControllerCreateMethodNotAllowed(t *testing.T) {
	mux := newTransferMux(transferServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/banking/transfers", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestTransferControllerGetStatus(t *testing.T) {
	mux := newTransferMux(transferServiceStub{
		statusResp: commons.SuccessResponse("Transfer status fetched", models.TransferStatusResponse{
			Status:          "completed",
			ReferenceNumber: "TXN123",
		}),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/banking/transfers/txn-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body commons.Response[models.TransferStatusResponse]
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data == nil || body.Data.Status != "completed" {
		t.Fatalf("unexpected body: %+v", body.Data)
	}
}

func TestTransferControllerGetStatusNotFound(t *testing.T) {
	mux := newTransferMux(transferServiceStub{
		statusResp: commons.ErrorResponse[models.TransferStatusResponse]("Transfer not found"),
		statusErr:  domain.ErrRecordNotFound,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/banking/transfers/txn-missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
