package main

import "net/http"

const version = "0.1.0"

// @Summary		Health check
// @Description	returns the status of the service
// @Tags			Health
// @Produce		json
// @Success		200	{object}	map[string]string
// @Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	data := map[string]string{
		"status":  "available",
		"version": version,
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		app.logger.Error(component, "Failed to write health response: %v", err)
	}
}
