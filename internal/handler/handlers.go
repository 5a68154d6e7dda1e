package handler

import (
	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/handler/http"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
