package service

import (
	"context"
	"fmt"

	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/models"
)

// statsService serves the dashboard's aggregate account counters.
type statsService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewStatsService(userRepository store.UserRepository, logger *logger.Logger) StatsService {
	return &statsService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// UserStats returns the total, active, and recent-signup counters.
func (s *statsService) UserStats(ctx context.Context) (models.UserStats, error) {
	log := logger.FromContext(ctx)

	stats, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users ended with error")
		return models.UserStats{}, fmt.Errorf("counting users ended with error: %w", err)
	}

	return stats, nil
}
