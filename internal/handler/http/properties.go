package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/store"
	"github.com/dmansurov/go-estate-api/internal/utils"
	"github.com/dmansurov/go-estate-api/models"
	"github.com/go-chi/chi/v5"
)

// findProperties serves POST /properties. The body is the filter object; an
// empty body is treated as an empty filter and matches all listings.
func (h *Handler) findProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var filter models.PropertyFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid property filter was passed")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := filter.Validate(); err != nil {
		log.Err(err).Msg("invalid property filter")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.services.PropertyService.FindAll(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during property search")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// getProperty serves GET /properties/{propertyID}.
func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid property id")
		writeError(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	property, err := h.services.PropertyService.FindByID(ctx, propertyID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoPropertyWasFound):
			writeError(w, fmt.Sprintf("Property with ID %d not found", propertyID), http.StatusNotFound)
		default:
			log.Err(err).Int64("id", propertyID).Msg("unexpected error occurred during property lookup")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, property, http.StatusOK)
}
