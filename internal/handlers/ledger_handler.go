package handlers

import (
	"net/http"

	"finledger/internal/dto"
	"finledger/internal/errors"
	"finledger/internal/services"

	"github.com/labstack/echo/v4"
)

// LedgerHandler exposes the store's snapshot and reload surface
type LedgerHandler struct {
	store services.LedgerStoreInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(store services.LedgerStoreInterface) *LedgerHandler {
	return &LedgerHandler{store: store}
}

// GetLedger returns the full installed snapshot plus ready/error state
func (h *LedgerHandler) GetLedger(c echo.Context) error {
	response := dto.NewLedgerResponse(h.store.Snapshot(), h.store.Ready(), h.store.LastError())
	return c.JSON(http.StatusOK, response)
}

// Refresh triggers a full reload of the three collections
func (h *LedgerHandler) Refresh(c echo.Context) error {
	if err := h.store.LoadAll(); err != nil {
		return SendError(c, errors.LedgerLoadFailed, errors.WithDetails(err.Error()))
	}

	response := dto.NewLedgerResponse(h.store.Snapshot(), h.store.Ready(), h.store.LastError())
	return c.JSON(http.StatusOK, response)
}
