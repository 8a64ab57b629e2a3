package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmansurov/go-estate-api/models"
)

// propertyColumns lists every column of the properties table in scan order.
var propertyColumns = []string{
	"id", "title", "location", "price", "bedrooms", "bathrooms", "size",
	"description", "community", "balcony", "type", "purpose", "reference_no",
	"completion", "furnishing", "added_on", "handover_date", "developer",
	"ownership", "built_up_area", "usage", "balcony_size",
	"parking_availability", "building_name", "total_floors", "swimming_pools",
	"total_parking_spaces", "total_building_area", "elevators", "images",
	"created_at", "updated_at",
}

// psql builds queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildPropertyPredicate translates a validated filter into the conjunctive
// WHERE clause shared by the page SELECT and the COUNT query. An empty filter
// yields an empty conjunction, i.e. no constraint.
//
// Mapping:
//   - purpose:    Buy → "For Sale", Rent → "For Rent" (equality)
//   - completion: All → no predicate; Ready/Off-Plan → equality
//   - type/bedrooms/bathrooms: set membership (IN), "Studio" already
//     normalized to 0 during filter decoding
//   - minPrice/maxPrice: inclusive bounds on the exact decimal price,
//     compared by the database
//   - location: case-insensitive substring match (ILIKE)
func buildPropertyPredicate(filter models.PropertyFilter) sq.And {
	pred := sq.And{}

	if purpose := filter.StoredPurpose(); purpose != "" {
		pred = append(pred, sq.Eq{"purpose": purpose})
	}

	if completion := filter.StoredCompletion(); completion != "" {
		pred = append(pred, sq.Eq{"completion": completion})
	}

	if len(filter.Types) > 0 {
		pred = append(pred, sq.Eq{"type": filter.Types})
	}

	if len(filter.Bedrooms) > 0 {
		bedrooms := make([]int, 0, len(filter.Bedrooms))
		for _, b := range filter.Bedrooms {
			bedrooms = append(bedrooms, int(b))
		}
		pred = append(pred, sq.Eq{"bedrooms": bedrooms})
	}

	if len(filter.Bathrooms) > 0 {
		pred = append(pred, sq.Eq{"bathrooms": filter.Bathrooms})
	}

	// price bounds travel as their original textual form so the database
	// compares exact decimals, never binary floats
	if filter.MinPrice != "" {
		pred = append(pred, sq.GtOrEq{"price": filter.MinPrice.String()})
	}
	if filter.MaxPrice != "" {
		pred = append(pred, sq.LtOrEq{"price": filter.MaxPrice.String()})
	}

	if filter.Location != "" {
		pred = append(pred, sq.ILike{"location": "%" + escapeLikePattern(filter.Location) + "%"})
	}

	return pred
}

// buildPropertyPageQuery builds the paginated SELECT for one result page,
// ordered by creation time, most recent first. The id tiebreak keeps paging
// stable across rows created in the same instant.
func buildPropertyPageQuery(filter models.PropertyFilter, page, limit int) sq.SelectBuilder {
	query := psql.Select(propertyColumns...).From("properties")

	if pred := buildPropertyPredicate(filter); len(pred) > 0 {
		query = query.Where(pred)
	}

	return query.
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64((page - 1) * limit)).
		Limit(uint64(limit))
}

// buildPropertyCountQuery builds the total-count query over the same
// predicate, independent of pagination.
func buildPropertyCountQuery(filter models.PropertyFilter) sq.SelectBuilder {
	query := psql.Select("COUNT(*)").From("properties")

	if pred := buildPropertyPredicate(filter); len(pred) > 0 {
		query = query.Where(pred)
	}

	return query
}

// likeEscaper neutralizes LIKE metacharacters in user input so a location
// filter matches them literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
