package store

import (
	"github.com/dmansurov/go-estate-api/internal/logger"
)

// Storages bundles all repositories backed by the shared database handle.
type Storages struct {
	UserRepository     UserRepository
	PropertyRepository PropertyRepository
}

// NewStorages constructs every repository on top of the given connection.
func NewStorages(db *DB, logger *logger.Logger) Storages {
	return Storages{
		UserRepository:     NewUserRepository(db, logger),
		PropertyRepository: NewPropertyRepository(db, logger),
	}
}
