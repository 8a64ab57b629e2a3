package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Property represents a single real-estate listing. Listings are created by a
// bulk import and are read-only from the API's perspective.
//
// Price and TotalBuildingArea are exact decimals stored as SQL NUMERIC and
// carried as strings on the Go side: all range comparisons happen in the
// database, so no binary floating-point rounding can affect filtering.
type Property struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`

	// Price is the listing price, currency-agnostic, exact decimal.
	Price string `json:"price"`

	// Bedrooms is a non-negative count; 0 means a studio.
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`

	// Size is the living area of the unit.
	Size int `json:"size"`

	Description *string `json:"description"`
	Community   string  `json:"community"`
	Balcony     bool    `json:"balcony"`

	// Type is the listing type: Apartment, Villa, Townhouse, Penthouse, Studio.
	Type string `json:"type"`

	// Purpose is either "For Sale" or "For Rent".
	Purpose string `json:"purpose"`

	ReferenceNo string `json:"referenceNo"`

	// Completion is either "Ready" or "Off-Plan".
	Completion string `json:"completion"`

	Furnishing          string     `json:"furnishing"`
	AddedOn             time.Time  `json:"addedOn"`
	HandoverDate        *string    `json:"handoverDate"`
	Developer           *string    `json:"developer"`
	Ownership           *string    `json:"ownership"`
	BuiltUpArea         *int       `json:"builtUpArea"`
	Usage               string     `json:"usage"`
	BalconySize         *int       `json:"balconySize"`
	ParkingAvailability bool       `json:"parkingAvailability"`
	BuildingName        string     `json:"buildingName"`
	TotalFloors         *int       `json:"totalFloors"`
	SwimmingPools       *int       `json:"swimmingPools"`
	TotalParkingSpaces  *int       `json:"totalParkingSpaces"`
	TotalBuildingArea   *string    `json:"totalBuildingArea"`
	Elevators           *int       `json:"elevators"`
	Images              StringList `json:"images"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Property model.
func (p Property) TableName() string {
	return "properties"
}

// StringList is a string slice stored in a single JSONB column.
// It implements sql.Scanner and driver.Valuer so it can be used directly
// in database/sql scans and query arguments.
type StringList []string

// Value serializes the list to JSON for storage.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("error marshaling string list: %w", err)
	}
	return string(b), nil
}

// Scan deserializes a JSON array from the database into the list.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported source type %T for string list", src)
	}

	return json.Unmarshal(data, (*[]string)(l))
}
