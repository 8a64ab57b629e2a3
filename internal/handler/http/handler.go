// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities for
// the REST API. Authentication, logging, tracing, and CORS concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"net/http"

	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/service"
	"github.com/dmansurov/go-estate-api/internal/utils"
	"github.com/dmansurov/go-estate-api/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeError writes the structured error body every non-2xx response uses.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusCode) //nolint:errcheck // response already committed
}
