package service

import (
	"github.com/udash/udash/internal/adapter"
	"github.com/udash/udash/internal/session"
	"github.com/udash/udash/internal/store"
)

type ClientServices struct {
	AuthService      ClientAuthService
	DashboardService ClientDashboardService
}

func NewClientServices(localStore store.LocalStore, serverAdapter adapter.ServerAdapter) *ClientServices {
	sess := session.New(session.DefaultMaxDuration)

	return &ClientServices{
		AuthService:      NewClientAuthService(localStore, serverAdapter, sess),
		DashboardService: NewClientDashboardService(serverAdapter),
	}
}
