package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/commons"
	"github.com/naveenanimation20/api-labs/internal/domain"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error)
	GetTransaction(ctx context.Context, id string) (commons.Response[models.TransactionResponse], error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (commons.Response[models.TransactionListResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/api/v1/banking/transactions", wrap(http.HandlerFunc(c.collection), authMiddleware))
	mux.Handle("/api/v1/banking/transactions/{id}", wrap(http.HandlerFunc(c.get), authMiddleware))
}

func (c *TransactionController) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.create(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("method not allowed"))
	}
}

func (c *TransactionController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateTransaction(r.Context(), req)
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

func (c *TransactionController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionListResponse]("invalid query parameters", err.Error()))
		return
	}

	response, err := c.service.ListTransactions(r.Context(), filter)
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransactionResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetTransaction(r.Context(), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

// transactionFilterFromQuery parses the optional accountId, type, startDate,
// endDate and limit query parameters. Dates accept RFC 3339 or plain
// YYYY-MM-DD; endDate given as a bare date covers the whole day.
func transactionFilterFromQuery(r *http.Request) (domain.TransactionFilter, error) {
	query := r.URL.Query()
	filter := domain.TransactionFilter{
		AccountID: strings.TrimSpace(query.Get("accountId")),
		Type:      domain.TransactionType(strings.ToLower(strings.TrimSpace(query.Get("type")))),
	}

	if filter.Type != "" && !filter.Type.Valid() {
		return filter, errInvalidTransactionType
	}

	if raw := strings.TrimSpace(query.Get("startDate")); raw != "" {
		parsed, err := parseQueryTime(raw, false)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &parsed
	}

	if raw := strings.TrimSpace(query.Get("endDate")); raw != "" {
		parsed, err := parseQueryTime(raw, true)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &parsed
	}

	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, errInvalidLimit
		}
		filter.Limit = limit
	}

	return filter, nil
}

var (
	errInvalidTransactionType = &queryError{"type must be one of debit, credit, transfer"}
	errInvalidLimit           = &queryError{"limit must be a positive integer"}
)

type queryError struct {
	message string
}

func (e *queryError) Error() string { return e.message }

func parseQueryTime(raw string, endOfDay bool) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &queryError{"dates must be RFC 3339 timestamps or YYYY-MM-DD"}
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return parsed, nil
}
