package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/naveenanimation20/api-labs/internal/adapter/http/middleware"
	"github.com/naveenanimation20/api-labs/internal/adapter/http/models"
	"github.com/naveenanimation20/api-labs/internal/commons"
	"github.com/naveenanimation20/api-labs/internal/logger"
)

type TransferService interface {
	Transfer(ctx context.Context, userID string, req models.CreateTransferRequest) (commons.Response[models.TransferResponse], error)
	GetTransferStatus(ctx context.Context, id string) (commons.Response[models.TransferStatusResponse], error)
}

type TransferController struct {
	service TransferService
}

func NewTransferController(service TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/api/v1/banking/transfers", wrap(http.HandlerFunc(c.createTransfer), authMiddleware))
	mux.Handle("/api/v1/banking/transfers/{id}", wrap(http.HandlerFunc(c.getTransferStatus), authMiddleware))
}

func (c *TransferController) createTransfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.TransferResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		return
	}

	var req models.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		return
	}
	logRequest(r, req)

	userID := middleware.UserID(r.Context())
	response, err := c.service.Transfer(r.Context(), userID, req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusFromError(err, http.StatusBadRequest)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *TransferController) getTransferStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		response := commons.ErrorResponse[models.TransferStatusResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		return
	}

	response, err := c.service.GetTransferStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFromError(err, http.StatusInternalServerError)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
