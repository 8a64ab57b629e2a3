package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/models"
)

// propertyRepository is the PostgreSQL-backed implementation of
// [PropertyRepository]. Listings are written by the seed migration only, so
// the repository exposes reads exclusively.
type propertyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided database connection and logger.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns one page of listings matching the filter plus the total
// matching count. The count runs over the same predicate as the page SELECT
// so the pagination metadata always agrees with the result set.
func (r *propertyRepository) FindAll(ctx context.Context, filter models.PropertyFilter, page, limit int) ([]models.Property, int64, error) {
	log := logger.FromContext(ctx)

	countSQL, countArgs, err := buildPropertyCountQuery(filter).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindAll").Msg("error: building count query")
		return nil, 0, fmt.Errorf("error building count query: %w", err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindAll").Msg("error: unexpected DB error")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	pageSQL, pageArgs, err := buildPropertyPageQuery(filter, page, limit).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindAll").Msg("error: building page query")
		return nil, 0, fmt.Errorf("error building page query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindAll").Msg("error: unexpected DB error")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0, limit)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			log.Err(err).Str("func", "*propertyRepository.FindAll").Msg("error: scanning error")
			return nil, 0, err
		}
		properties = append(properties, property)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindAll").Msg("error: row iteration error")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return properties, total, nil
}

// FindByID returns the full record of a single listing.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoPropertyWasFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *propertyRepository) FindByID(ctx context.Context, propertyID int64) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(propertyColumns...).
		From("properties").
		Where("id = ?", propertyID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindByID").Msg("error: building query")
		return models.Property{}, fmt.Errorf("error building query: %w", err)
	}

	property, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, ErrNoPropertyWasFound
		}
		log.Err(err).Str("func", "*propertyRepository.FindByID").Msg("error: unexpected DB error")
		return models.Property{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return property, nil
}

func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Location,
		&p.Price,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Size,
		&p.Description,
		&p.Community,
		&p.Balcony,
		&p.Type,
		&p.Purpose,
		&p.ReferenceNo,
		&p.Completion,
		&p.Furnishing,
		&p.AddedOn,
		&p.HandoverDate,
		&p.Developer,
		&p.Ownership,
		&p.BuiltUpArea,
		&p.Usage,
		&p.BalconySize,
		&p.ParkingAvailability,
		&p.BuildingName,
		&p.TotalFloors,
		&p.SwimmingPools,
		&p.TotalParkingSpaces,
		&p.TotalBuildingArea,
		&p.Elevators,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
