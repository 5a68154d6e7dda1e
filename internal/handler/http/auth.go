package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/udash/udash/internal/app"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/service"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/internal/utils"
	"github.com/udash/udash/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequiredFieldsMissing),
			errors.Is(err, service.ErrPasswordsDoNotMatch),
			errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Str("username", req.Username).Msg("registration form rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Str("username", req.Username).Msg("username already exists")
			http.Error(w, app.MsgUsernameAlreadyExists, http.StatusConflict)
			return
		case errors.Is(err, store.ErrStoreUnavailable):
			log.Err(err).Msg("credential store unavailable")
			http.Error(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, registeredUser.Profile(), http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequiredFieldsMissing):
			log.Err(err).Str("username", req.Username).Msg("login form rejected")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("username", req.Username).Msg("credential check failed")
			http.Error(w, app.MsgInvalidUsernamePassword, http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrStoreUnavailable):
			log.Err(err).Msg("credential store unavailable")
			http.Error(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, foundUser.Profile(), http.StatusOK)
}
