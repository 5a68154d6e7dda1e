package http

import (
	"errors"
	"net/http"

	"github.com/udash/udash/internal/app"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/internal/utils"
)

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.StatsService.UserStats(ctx)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrStoreUnavailable):
			log.Err(err).Msg("credential store unavailable")
			http.Error(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during stats aggregation")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
