package service

import (
	"context"

	"github.com/udash/udash/internal/adapter"
	"github.com/udash/udash/models"
)

type clientDashboardService struct {
	adapter adapter.ServerAdapter
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter}
}

func (d *clientDashboardService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := d.adapter.Profile(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}

func (d *clientDashboardService) UserStats(ctx context.Context) (models.UserStats, error) {
	stats, err := d.adapter.UserStats(ctx)
	if err != nil {
		return models.UserStats{}, mapAdapterError(err)
	}

	return stats, nil
}

func (d *clientDashboardService) ServerVersion(ctx context.Context) (string, error) {
	version, err := d.adapter.ServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
