package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port/usecases_port"
)

type PresaleHandler struct {
	search usecases_port.SearchPresalesUseCase
	get    usecases_port.GetPresaleUseCase
}

func NewPresaleHandler(search usecases_port.SearchPresalesUseCase, get usecases_port.GetPresaleUseCase) *PresaleHandler {
	return &PresaleHandler{search: search, get: get}
}

func parsePresaleFilters(r *http.Request) (domain.PresaleFilters, error) {
	var filters domain.PresaleFilters
	var err error

	filters.City = queryString(r, "city")
	filters.District = queryString(r, "district")
	filters.ProjectName = queryString(r, "project_name")
	filters.DateFrom = queryString(r, "date_from")
	filters.DateTo = queryString(r, "date_to")

	if filters.PriceMin, err = queryFloat(r, "price_min"); err != nil {
		return filters, err
	}
	if filters.PriceMax, err = queryFloat(r, "price_max"); err != nil {
		return filters, err
	}

	filters.BuildingTypes = queryStringSlice(r, "building_types")

	return filters, nil
}

func (h *PresaleHandler) Search(w http.ResponseWriter, r *http.Request) {
	filters, err := parsePresaleFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := parsePageRequest(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.search.Execute(r.Context(), filters, page)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to search presales")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPageResponse(result, toPresaleDTO))
}

func (h *PresaleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "record id must be an integer")
		return
	}

	rec, err := h.get.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "presale not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "failed to get presale")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPresaleDTO(*rec))
}
