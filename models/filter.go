package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// External filter enums. Purpose values map to the stored purpose strings,
// completion values are stored as-is except All which imposes no constraint.
const (
	PurposeBuy  = "Buy"
	PurposeRent = "Rent"

	CompletionAll     = "All"
	CompletionReady   = "Ready"
	CompletionOffPlan = "Off-Plan"
)

// Stored purpose strings the external enum maps to.
const (
	PurposeForSale = "For Sale"
	PurposeForRent = "For Rent"
)

// Pagination defaults applied when page/limit are absent from the filter.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Filter validation errors, surfaced as 400 Bad Request.
var (
	ErrFilterPurposeInvalid    = fmt.Errorf("purpose must be %q or %q", PurposeBuy, PurposeRent)
	ErrFilterCompletionInvalid = fmt.Errorf("completion must be %q, %q or %q", CompletionAll, CompletionReady, CompletionOffPlan)
	ErrFilterBedroomsInvalid   = errors.New(`each bedroom value must be a non-negative integer or "Studio"`)
	ErrFilterBathroomsInvalid  = errors.New("each bathroom value must be a non-negative integer")
	ErrFilterPriceInvalid      = errors.New("price bounds must be non-negative numbers")
	ErrFilterPriceRange        = errors.New("maxPrice must not be less than minPrice")
	ErrFilterPageInvalid       = errors.New("page must be a positive integer")
	ErrFilterLimitInvalid      = errors.New("limit must be a positive integer")
)

// BedroomCount is a bedroom filter value. It accepts either a non-negative
// JSON number or the string "Studio" (case-insensitive), which normalizes
// to 0.
type BedroomCount int

// UnmarshalJSON implements the mixed number-or-"Studio" contract.
func (b *BedroomCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.EqualFold(s, "studio") {
			*b = 0
			return nil
		}
		return ErrFilterBedroomsInvalid
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil || n < 0 {
		return ErrFilterBedroomsInvalid
	}
	*b = BedroomCount(n)
	return nil
}

// PropertyFilter is the body of POST /properties. Every field is optional;
// absent fields impose no constraint, so the zero filter matches all
// properties.
//
// Price bounds are carried as json.Number so the exact textual form of the
// bound reaches the database parameter untouched by float conversion.
type PropertyFilter struct {
	Purpose    string         `json:"purpose,omitempty"`
	Completion string         `json:"completion,omitempty"`
	Types      []string       `json:"type,omitempty"`
	Bedrooms   []BedroomCount `json:"bedrooms,omitempty"`
	Bathrooms  []int          `json:"bathrooms,omitempty"`
	MinPrice   json.Number    `json:"minPrice,omitempty"`
	MaxPrice   json.Number    `json:"maxPrice,omitempty"`
	Location   string         `json:"location,omitempty"`
	Page       int            `json:"page,omitempty"`
	Limit      int            `json:"limit,omitempty"`
}

// Validate checks all present filter fields and returns the first violation.
func (f PropertyFilter) Validate() error {
	switch f.Purpose {
	case "", PurposeBuy, PurposeRent:
	default:
		return ErrFilterPurposeInvalid
	}

	switch f.Completion {
	case "", CompletionAll, CompletionReady, CompletionOffPlan:
	default:
		return ErrFilterCompletionInvalid
	}

	for _, b := range f.Bathrooms {
		if b < 0 {
			return ErrFilterBathroomsInvalid
		}
	}

	minPrice, err := parsePriceBound(f.MinPrice)
	if err != nil {
		return err
	}
	maxPrice, err := parsePriceBound(f.MaxPrice)
	if err != nil {
		return err
	}
	if f.MinPrice != "" && f.MaxPrice != "" && maxPrice < minPrice {
		return ErrFilterPriceRange
	}

	if f.Page < 0 {
		return ErrFilterPageInvalid
	}
	if f.Limit < 0 {
		return ErrFilterLimitInvalid
	}

	return nil
}

// PageOrDefault returns the 1-indexed page to serve.
func (f PropertyFilter) PageOrDefault() int {
	if f.Page < 1 {
		return DefaultPage
	}
	return f.Page
}

// LimitOrDefault returns the page size to serve.
func (f PropertyFilter) LimitOrDefault() int {
	if f.Limit < 1 {
		return DefaultLimit
	}
	return f.Limit
}

// StoredPurpose maps the external purpose enum to the stored string.
// Returns "" when no purpose filter is set.
func (f PropertyFilter) StoredPurpose() string {
	switch f.Purpose {
	case PurposeBuy:
		return PurposeForSale
	case PurposeRent:
		return PurposeForRent
	default:
		return ""
	}
}

// StoredCompletion returns the completion value to filter on,
// or "" when no predicate applies (absent or All).
func (f PropertyFilter) StoredCompletion() string {
	switch f.Completion {
	case CompletionReady, CompletionOffPlan:
		return f.Completion
	default:
		return ""
	}
}

// parsePriceBound validates the textual form of a price bound. The float
// value is used for validation and range ordering only; the bound itself is
// passed to the database as its original string.
func parsePriceBound(n json.Number) (float64, error) {
	if n == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || v < 0 {
		return 0, ErrFilterPriceInvalid
	}
	return v, nil
}
