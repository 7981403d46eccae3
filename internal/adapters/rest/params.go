package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"lvr-storage-service/internal/core/domain"
)

// Query parameter helpers. Absence and the zero value are different things
// here: an absent parameter yields a nil pointer, a present one always yields
// a value, even "0" or "false". Malformed values are caller errors.

func queryString(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}

func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := queryString(r, name)
	if raw == nil {
		return nil, nil
	}
	value, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be a number", name)
	}
	return &value, nil
}

func queryInt(r *http.Request, name string) (*int, error) {
	raw := queryString(r, name)
	if raw == nil {
		return nil, nil
	}
	value, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be an integer", name)
	}
	return &value, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := queryString(r, name)
	if raw == nil {
		return nil, nil
	}
	value, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be a boolean", name)
	}
	return &value, nil
}

// queryStringSlice reads a repeatable parameter. An absent key returns nil;
// a present key returns the non-blank values, possibly an empty non-nil slice
// which downstream treats as matching nothing.
func queryStringSlice(r *http.Request, name string) []string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	values := make([]string, 0)
	for _, value := range r.URL.Query()[name] {
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}

// parsePageRequest reads the shared pagination and ordering parameters.
func parsePageRequest(r *http.Request) (domain.PageRequest, error) {
	page := domain.PageRequest{
		Skip:      0,
		Limit:     20,
		OrderDesc: true,
	}

	if skip, err := queryInt(r, "skip"); err != nil {
		return page, err
	} else if skip != nil {
		page.Skip = *skip
	}

	if limit, err := queryInt(r, "limit"); err != nil {
		return page, err
	} else if limit != nil {
		page.Limit = *limit
	}

	if orderBy := queryString(r, "order_by"); orderBy != nil {
		page.OrderBy = *orderBy
	}

	if orderDesc, err := queryBool(r, "order_desc"); err != nil {
		return page, err
	} else if orderDesc != nil {
		page.OrderDesc = *orderDesc
	}

	if err := page.Validate(); err != nil {
		return page, err
	}
	return page, nil
}
