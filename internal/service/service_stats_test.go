package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/mock"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/models"
	"go.uber.org/mock/gomock"
)

func TestStatsService_UserStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewStatsService(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).
		Return(models.UserStats{TotalUsers: 120, ActiveUsers: 118, RecentSignups: 5}, nil)

	stats, err := svc.UserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(118), stats.ActiveUsers)
	assert.Equal(t, int64(5), stats.RecentSignups)
}

func TestStatsService_UserStats_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewStatsService(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(models.UserStats{}, store.ErrStoreUnavailable)

	_, err := svc.UserStats(ctx)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}
