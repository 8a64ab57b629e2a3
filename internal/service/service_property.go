package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/store"
	"github.com/dmansurov/go-estate-api/models"
)

// propertyService is the concrete implementation of PropertyService.
// The filter itself has already been validated at the HTTP boundary; the
// service normalizes pagination, delegates querying to the repository, and
// derives the pagination metadata.
type propertyService struct {
	propertyRepository store.PropertyRepository
	logger             *logger.Logger
}

// NewPropertyService constructs a PropertyService backed by the given
// repository.
func NewPropertyService(propertyRepository store.PropertyRepository, logger *logger.Logger) PropertyService {
	return &propertyService{
		propertyRepository: propertyRepository,
		logger:             logger,
	}
}

// FindAll returns one page of listings matching the filter plus pagination
// metadata. Page and limit fall back to their defaults (1 and 10) and are
// clamped to a minimum of 1; the total count is computed independently of
// pagination, so a page past the end yields an empty data slice with
// accurate metadata.
func (s *propertyService) FindAll(ctx context.Context, filter models.PropertyFilter) (models.PropertyPage, error) {
	log := logger.FromContext(ctx)

	page := filter.PageOrDefault()
	limit := filter.LimitOrDefault()

	properties, total, err := s.propertyRepository.FindAll(ctx, filter, page, limit)
	if err != nil {
		log.Err(err).Msg("property search failed")
		return models.PropertyPage{}, fmt.Errorf("property search failed: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return models.PropertyPage{
		Data: properties,
		Pagination: models.Pagination{
			Page:            page,
			Limit:           limit,
			Total:           total,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}, nil
}

// FindByID returns the full record of a single listing,
// or store.ErrNoPropertyWasFound.
func (s *propertyService) FindByID(ctx context.Context, propertyID int64) (models.Property, error) {
	log := logger.FromContext(ctx)

	property, err := s.propertyRepository.FindByID(ctx, propertyID)
	if err != nil {
		if !errors.Is(err, store.ErrNoPropertyWasFound) {
			log.Err(err).Int64("id", propertyID).Msg("property search by id failed")
		}
		return models.Property{}, err
	}

	return property, nil
}
