package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/models"
)

func newTestPropertyRepo(t *testing.T) (*propertyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &propertyRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

// deref unwraps a pointer field into a NULL-able sqlmock row value.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func propertyRows(properties ...models.Property) *sqlmock.Rows {
	rows := sqlmock.NewRows(propertyColumns)
	for _, p := range properties {
		rows.AddRow(
			p.ID, p.Title, p.Location, p.Price, p.Bedrooms, p.Bathrooms, p.Size,
			deref(p.Description), p.Community, p.Balcony, p.Type, p.Purpose, p.ReferenceNo,
			p.Completion, p.Furnishing, p.AddedOn, deref(p.HandoverDate), deref(p.Developer),
			deref(p.Ownership), deref(p.BuiltUpArea), p.Usage, deref(p.BalconySize),
			p.ParkingAvailability, p.BuildingName, deref(p.TotalFloors), deref(p.SwimmingPools),
			deref(p.TotalParkingSpaces), deref(p.TotalBuildingArea), deref(p.Elevators), `["https://example.com/1.jpg"]`,
			p.CreatedAt, p.UpdatedAt,
		)
	}
	return rows
}

func testProperty(id int64, title, price string) models.Property {
	now := time.Now()
	return models.Property{
		ID:           id,
		Title:        title,
		Location:     title + ", Dubai",
		Price:        price,
		Bedrooms:     2,
		Bathrooms:    2,
		Size:         1150,
		Community:    "Business Bay",
		Balcony:      true,
		Type:         "Apartment",
		Purpose:      "For Sale",
		ReferenceNo:  "ES-2024-0001",
		Completion:   "Ready",
		Furnishing:   "Furnished",
		AddedOn:      now,
		Usage:        "Residential",
		BuildingName: title,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPropertyFindAll_EmptyFilter(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	mock.ExpectQuery(`SELECT (.+) FROM properties ORDER BY created_at DESC, id DESC`).
		WillReturnRows(propertyRows(
			testProperty(2, "Palm Jumeirah Villa", "9500000.00"),
			testProperty(1, "Binghatti Starlight", "2350000.00"),
		))

	properties, total, err := repo.FindAll(ctx, models.PropertyFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total=2, got %d", total)
	}
	if len(properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(properties))
	}
	if properties[0].ID != 2 {
		t.Errorf("expected newest property first, got ID=%d", properties[0].ID)
	}
	if properties[0].Price != "9500000.00" {
		t.Errorf("expected exact price string, got %q", properties[0].Price)
	}
	if len(properties[0].Images) != 1 || properties[0].Images[0] != "https://example.com/1.jpg" {
		t.Errorf("expected images decoded from JSON, got %v", properties[0].Images)
	}
}

func TestPropertyFindAll_FilterArgsReachBothQueries(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t)
	defer db.Close()

	ctx := context.Background()
	filter := models.PropertyFilter{Purpose: models.PurposeRent}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties WHERE \(purpose = \$1\)`).
		WithArgs("For Rent").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	mock.ExpectQuery(`SELECT (.+) FROM properties WHERE \(purpose = \$1\)`).
		WithArgs("For Rent").
		WillReturnRows(propertyRows())

	properties, total, err := repo.FindAll(ctx, filter, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("expected total=0, got %d", total)
	}
	if len(properties) != 0 {
		t.Errorf("expected empty page, got %d properties", len(properties))
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPropertyFindAll_CountError(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties`).
		WillReturnError(errors.New("db network error"))

	_, _, err := repo.FindAll(ctx, models.PropertyFilter{}, 1, 10)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestPropertyFindByID_Success(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t)
	defer db.Close()

	ctx := context.Background()
	saved := testProperty(6, "Burj Khalifa Penthouse", "8900000.00")

	mock.ExpectQuery(`SELECT (.+) FROM properties WHERE id = \$1`).
		WithArgs(int64(6)).
		WillReturnRows(propertyRows(saved))

	found, err := repo.FindByID(ctx, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != saved.ID {
		t.Errorf("expected ID=%d, got %d", saved.ID, found.ID)
	}
	if found.Title != saved.Title {
		t.Errorf("expected title %q, got %q", saved.Title, found.Title)
	}
}

func TestPropertyFindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM properties WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(ctx, 404)
	if !errors.Is(err, ErrNoPropertyWasFound) {
		t.Fatalf("expected ErrNoPropertyWasFound, got %v", err)
	}
}
