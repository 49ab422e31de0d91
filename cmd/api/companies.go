package main

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/farxc/cnpj_registry/internal/lookup"
)

const cacheControl = "max-age=86400"

// @Summary		Get company
// @Description	Returns the registry document for a CNPJ, masked or digits only. The slash of a masked CNPJ must be sent as %2F.
// @Tags			Companies
// @Produce		json
// @Param			cnpj	path		string					true	"CNPJ"
// @Success		200		{object}	store.CompanyDocument	"Company document"
// @Failure		400		{object}	response.ErrorResponse	"Malformed CNPJ"
// @Failure		404		{object}	response.ErrorResponse	"CNPJ not in the registry"
// @Failure		500		{object}	response.ErrorResponse	"Registry unavailable"
// @Router			/companies/{cnpj} [get]
func (app *application) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	// chi matches on the escaped path, so %2F arrives undecoded.
	param := chi.URLParam(r, "cnpj")
	raw, err := url.PathUnescape(param)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, (&lookup.InvalidIdentifierError{Input: param}).Error())
		return
	}

	app.respondWithCompany(w, r, raw)
}

// @Summary		Look up company (form)
// @Description	Accepts the CNPJ as the "cnpj" form field, or as {"cnpj": "..."} when sent as JSON.
// @Tags			Companies
// @Accept			x-www-form-urlencoded
// @Accept			json
// @Produce		json
// @Param			cnpj	formData	string					true	"CNPJ"
// @Success		200		{object}	store.CompanyDocument	"Company document"
// @Failure		400		{object}	response.ErrorResponse	"Missing or malformed CNPJ"
// @Failure		404		{object}	response.ErrorResponse	"CNPJ not in the registry"
// @Failure		500		{object}	response.ErrorResponse	"Registry unavailable"
// @Router			/ [post]
func (app *application) handleLegacyLookup(w http.ResponseWriter, r *http.Request) {
	var raw string

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var input struct {
			CNPJ string `json:"cnpj"`
		}
		if err := readJSON(w, r, &input); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		raw = input.CNPJ
	} else {
		raw = r.PostFormValue("cnpj")
	}

	if raw == "" {
		writeJSONError(w, http.StatusBadRequest, "CNPJ não enviado na requisição POST.")
		return
	}

	app.respondWithCompany(w, r, raw)
}

func (app *application) respondWithCompany(w http.ResponseWriter, r *http.Request, raw string) {
	doc, err := app.lookup.Lookup(r.Context(), raw)

	var invalidErr *lookup.InvalidIdentifierError
	switch {
	case errors.As(err, &invalidErr):
		writeJSONError(w, http.StatusBadRequest, invalidErr.Error())
		return
	case errors.Is(err, lookup.ErrNotFound):
		cnpj, _ := lookup.Normalize(raw)
		writeJSONError(w, http.StatusNotFound, fmt.Sprintf("CNPJ %s não encontrado.", lookup.Mask(cnpj)))
		return
	case err != nil:
		app.logger.Error(component, "Lookup for %q failed: %v", raw, err)
		writeJSONError(w, http.StatusInternalServerError, "failed to look up company")
		return
	}

	w.Header().Set("Cache-Control", cacheControl)
	if err := writeJSON(w, http.StatusOK, doc); err != nil {
		app.logger.Error(component, "Failed to write company response: %v", err)
	}
}
