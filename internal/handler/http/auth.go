package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
)

const tokenTypeBearer = "Bearer"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SignupResponse{ID: user.UserID, Username: user.Username}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", token.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", tokenTypeBearer+" "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{
		Token:     token.SignedString,
		TokenType: tokenTypeBearer,
		ExpiresAt: token.ExpiresAt,
	}, http.StatusOK)
}

// me returns the identity bound by withIdentity.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}
