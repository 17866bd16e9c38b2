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

type AccountService interface {
	CreateAccount(ctx context.Context, userID string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context, userID string) (commons.Response[models.AccountListResponse], error)
	GetAccount(ctx context.Context, userID string, id string) (commons.Response[models.AccountResponse], error)
	UpdateAccount(ctx context.Context, userID string, id string, req models.UpdateAccountRequest) (commons.Response[models.AccountResponse], error)
	DeleteAccount(ctx context.Context, userID string, id string) (commons.Response[struct{}], error)
	GetBalance(ctx context.Context, userID string, id string) (commons.Response[models.BalanceResponse], error)
	GetStatement(ctx context.Context, userID string, id string) (commons.Response[models.StatementResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/api/v1/banking/accounts", wrap(http.HandlerFunc(c.collection), authMiddleware))
	mux.Handle("/api/v1/banking/accounts/{id}", wrap(http.HandlerFunc(c.item), authMiddleware))
	mux.Handle("/api/v1/banking/accounts/{id}/balance", wrap(http.HandlerFunc(c.balance), authMiddleware))
	mux.Handle("/api/v1/banking/accounts/{id}/statement", wrap(http.HandlerFunc(c.statement), authMiddleware))
}

func (c *AccountController) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.create(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("method not allowed"))
	}
}

func (c *AccountController) item(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.get(w, r)
	case http.MethodPut:
		c.update(w, r)
	case http.MethodDelete:
		c.delete(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("method not allowed"))
	}
}

func (c *AccountController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateAccount(r.Context(), middleware.UserID(r.Context()), req)
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

func (c *AccountController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListAccounts(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetAccount(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.UpdateAccount(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"), req)
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusBadRequest)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.DeleteAccount(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) balance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.BalanceResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetBalance(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) statement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.StatementResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetStatement(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
