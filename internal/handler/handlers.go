package handler

import (
	"github.com/fairshare/fairshare/internal/config"
	"github.com/fairshare/fairshare/internal/handler/http"
	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/service"
)

// Handlers groups the transport handlers of the application. HTTP is the
// only transport today; the indirection keeps the wiring in main stable if
// another transport is added.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs all transport handlers.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}
}
