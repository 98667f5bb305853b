package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/utils"
)

type Handler struct {
	services   *service.Services
	requestIDs *utils.RequestIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		requestIDs: utils.NewRequestIDGenerator(),
		logger:     logger,
	}
}

// requestLogger returns the logger bound by withRequestID, or the handler's
// own logger when the request carries none.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	l := logger.FromRequest(r)
	if l.GetLevel() == zerolog.Disabled {
		return h.logger
	}
	return l
}
