package service

import (
	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/store"
)

type Services struct {
	AuthService    AuthService
	StatsService   StatsService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		StatsService:   NewStatsService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
