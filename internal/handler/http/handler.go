package http

import (
	"encoding/json"
	"net/http"

	"github.com/fairshare/fairshare/internal/config"
	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/service"
)

type Handler struct {
	services *service.Services

	// production suppresses internal error detail in 500 responses.
	production bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		production: cfg.Production(),
		logger:     logger,
	}
}

// decodeJSONBody decodes the request body into a generic map so that the
// schema validators can distinguish absent keys from empty values.
func decodeJSONBody(r *http.Request) (map[string]any, error) {
	body := make(map[string]any)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// intifyUpdates converts JSON numbers (decoded as float64) into int64 for
// the named id columns so that the database receives integer values.
func intifyUpdates(updates map[string]any, fields ...string) {
	for _, field := range fields {
		if value, ok := updates[field].(float64); ok {
			updates[field] = int64(value)
		}
	}
}
