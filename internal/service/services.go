package service

import (
	"github.com/dmansurov/go-estate-api/internal/config"
	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/store"
)

// Services bundles the business-logic services exposed to the HTTP layer.
type Services struct {
	AuthService     AuthService
	PropertyService PropertyService
}

// NewServices constructs every service on top of the given storages and
// notifier.
func NewServices(storages store.Storages, notifier EmailNotifier, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, notifier, cfg, logger),
		PropertyService: NewPropertyService(storages.PropertyRepository, logger),
	}
}
