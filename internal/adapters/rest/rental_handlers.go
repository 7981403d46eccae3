package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port/usecases_port"
)

type RentalHandler struct {
	search usecases_port.SearchRentalsUseCase
	get    usecases_port.GetRentalUseCase
}

func NewRentalHandler(search usecases_port.SearchRentalsUseCase, get usecases_port.GetRentalUseCase) *RentalHandler {
	return &RentalHandler{search: search, get: get}
}

func parseRentalFilters(r *http.Request) (domain.RentalFilters, error) {
	var filters domain.RentalFilters
	var err error

	filters.City = queryString(r, "city")
	filters.District = queryString(r, "district")
	filters.DateFrom = queryString(r, "date_from")
	filters.DateTo = queryString(r, "date_to")

	if filters.RentMin, err = queryFloat(r, "rent_min"); err != nil {
		return filters, err
	}
	if filters.RentMax, err = queryFloat(r, "rent_max"); err != nil {
		return filters, err
	}

	filters.BuildingTypes = queryStringSlice(r, "building_types")

	if filters.HasElevator, err = queryBool(r, "has_elevator"); err != nil {
		return filters, err
	}
	if filters.HasFurniture, err = queryBool(r, "has_furniture"); err != nil {
		return filters, err
	}
	if filters.HasManager, err = queryBool(r, "has_manager"); err != nil {
		return filters, err
	}

	return filters, nil
}

func (h *RentalHandler) Search(w http.ResponseWriter, r *http.Request) {
	filters, err := parseRentalFilters(r)
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
		WriteJSONError(w, http.StatusInternalServerError, "failed to search rentals")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPageResponse(result, toRentalDTO))
}

func (h *RentalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "record id must be an integer")
		return
	}

	rec, err := h.get.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "rental not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "failed to get rental")
		return
	}

	RespondWithJSON(w, http.StatusOK, toRentalDTO(*rec))
}
