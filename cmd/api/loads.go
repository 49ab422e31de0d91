package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/farxc/cnpj_registry/internal/response"
	"github.com/farxc/cnpj_registry/internal/store"
)

const maxLoadHistoryLimit = 100

type loadHistoryReader interface {
	GetLatest(ctx context.Context, limit int) ([]store.LoadHistory, error)
}

type GetLoadHistoryResponse = response.APIResponse[[]store.LoadHistory]

// @Summary		Get classification load history
// @Description	Get the latest classification feed loads, newest first.
// @Tags			Loads
// @Produce		json
// @Param			limit	query		int						false	"Limit the number of results"	default(10)
// @Success		200		{object}	GetLoadHistoryResponse	"Successfully retrieved latest loads"
// @Failure		500		{object}	response.ErrorResponse	"Failed to get load history"
// @Router			/loads [get]
func (app *application) handleGetLoadHistory(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = min(l, maxLoadHistoryLimit)
	}

	data, err := app.loads.GetLatest(r.Context(), limit)
	if err != nil {
		app.logger.Error(component, "Failed to get load history: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to get load history")
		return
	}

	resp := &GetLoadHistoryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved latest loads",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.logger.Error(component, "Failed to write load history response: %v", err)
	}
}
