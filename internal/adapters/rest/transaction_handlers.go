package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port/usecases_port"
)

type TransactionHandler struct {
	search usecases_port.SearchTransactionsUseCase
	get    usecases_port.GetTransactionUseCase
}

func NewTransactionHandler(search usecases_port.SearchTransactionsUseCase, get usecases_port.GetTransactionUseCase) *TransactionHandler {
	return &TransactionHandler{search: search, get: get}
}

func parseTransactionFilters(r *http.Request) (domain.TransactionFilters, error) {
	var filters domain.TransactionFilters
	var err error

	filters.City = queryString(r, "city")
	filters.District = queryString(r, "district")
	filters.TransactionTargets = queryStringSlice(r, "transaction_targets")
	filters.AddressKeyword = queryString(r, "address")
	filters.DateFrom = queryString(r, "date_from")
	filters.DateTo = queryString(r, "date_to")

	if filters.PriceMin, err = queryFloat(r, "price_min"); err != nil {
		return filters, err
	}
	if filters.PriceMax, err = queryFloat(r, "price_max"); err != nil {
		return filters, err
	}
	if filters.UnitPriceMin, err = queryFloat(r, "unit_price_min"); err != nil {
		return filters, err
	}
	if filters.UnitPriceMax, err = queryFloat(r, "unit_price_max"); err != nil {
		return filters, err
	}
	if filters.AreaMin, err = queryFloat(r, "area_min"); err != nil {
		return filters, err
	}
	if filters.AreaMax, err = queryFloat(r, "area_max"); err != nil {
		return filters, err
	}
	if filters.MainAreaMin, err = queryFloat(r, "main_area_min"); err != nil {
		return filters, err
	}
	if filters.MainAreaMax, err = queryFloat(r, "main_area_max"); err != nil {
		return filters, err
	}

	filters.BuildingTypes = queryStringSlice(r, "building_types")
	filters.MainUsages = queryStringSlice(r, "main_usages")
	filters.UrbanLandUses = queryStringSlice(r, "urban_land_uses")

	if filters.HasElevator, err = queryBool(r, "has_elevator"); err != nil {
		return filters, err
	}
	if filters.HasManagement, err = queryBool(r, "has_management"); err != nil {
		return filters, err
	}
	if filters.HasNote, err = queryBool(r, "has_note"); err != nil {
		return filters, err
	}

	if filters.FloorMin, err = queryInt(r, "floor_min"); err != nil {
		return filters, err
	}
	if filters.FloorMax, err = queryInt(r, "floor_max"); err != nil {
		return filters, err
	}
	if filters.RoomCount, err = queryInt(r, "rooms"); err != nil {
		return filters, err
	}
	if filters.LivingCount, err = queryInt(r, "halls"); err != nil {
		return filters, err
	}
	if filters.BathroomCount, err = queryInt(r, "bathrooms"); err != nil {
		return filters, err
	}
	if filters.AgeMin, err = queryInt(r, "age_min"); err != nil {
		return filters, err
	}
	if filters.AgeMax, err = queryInt(r, "age_max"); err != nil {
		return filters, err
	}

	return filters, nil
}

func (h *TransactionHandler) Search(w http.ResponseWriter, r *http.Request) {
	filters, err := parseTransactionFilters(r)
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
		WriteJSONError(w, http.StatusInternalServerError, "failed to search transactions")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPageResponse(result, toTransactionDTO))
}

func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "record id must be an integer")
		return
	}

	rec, err := h.get.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "transaction not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "failed to get transaction")
		return
	}

	RespondWithJSON(w, http.StatusOK, toTransactionDTO(*rec))
}
