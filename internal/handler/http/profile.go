package http

import (
	"errors"
	"net/http"

	"github.com/udash/udash/internal/app"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/internal/utils"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profile, err := h.services.AuthService.Profile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			// Valid token for an account that has since been removed.
			log.Err(err).Int64("id", userID).Msg("profile requested for missing user")
			http.Error(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		case errors.Is(err, store.ErrStoreUnavailable):
			log.Err(err).Msg("credential store unavailable")
			http.Error(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile lookup")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
