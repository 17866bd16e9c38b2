package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/middleware"
	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/commons"
)

type LoanService interface {
	ApplyForLoan(ctx context.Context, userID string, req models.ApplyLoanRequest) (commons.Response[models.LoanResponse], error)
	ListLoans(ctx context.Context, userID string) (commons.Response[models.LoanListResponse], error)
	GetLoan(ctx context.Context, userID string, id string) (commons.Response[models.LoanResponse], error)
	UpdateLoanStatus(ctx context.Context, id string, req models.UpdateLoanStatusRequest) (commons.Response[models.LoanResponse], error)
	MakeLoanPayment(ctx context.Context, userID string, id string, req models.LoanPaymentRequest) (commons.Response[models.LoanResponse], error)
}

type LoanController struct {
	service LoanService
}

func NewLoanController(service LoanService) *LoanController {
	return &LoanController{service: service}
}

func (c *LoanController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/api/v1/banking/loans", wrap(http.HandlerFunc(c.collection), authMiddleware))
	mux.Handle("/api/v1/banking/loans/{id}", wrap(http.HandlerFunc(c.get), authMiddleware))
	mux.Handle("/api/v1/banking/loans/{id}/status", wrap(http.HandlerFunc(c.updateStatus), authMiddleware))
	mux.Handle("/api/v1/banking/loans/{id}/payments", wrap(http.HandlerFunc(c.makePayment), authMiddleware))
}

func (c *LoanController) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.apply(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("method not allowed"))
	}
}

func (c *LoanController) apply(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ApplyLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LoanResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.ApplyForLoan(r.Context(), middleware.UserID(r.Context()), req)
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusBadRequest)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *LoanController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListLoans(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *LoanController) get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.LoanResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetLoan(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *LoanController) updateStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPut {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.LoanResponse]("method not allowed"))
		return
	}

	var req models.UpdateLoanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LoanResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.UpdateLoanStatus(r.Context(), r.PathValue("id"), req)
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusBadRequest)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *LoanController) makePayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.LoanResponse]("method not allowed"))
		return
	}

	var req models.LoanPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LoanResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.MakeLoanPayment(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"), req)
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusBadRequest)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
