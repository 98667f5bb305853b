package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	post, err := h.services.PostService.Create(ctx, identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	page, err := h.services.PostService.Timeline(ctx, identity, timelineRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// userPosts serves GET /users/{userID}/posts. Reading another user's posts is
// forbidden.
func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, r, ErrInvalidUserID)
		return
	}

	page, err := h.services.PostService.UserPosts(ctx, identity, userID, timelineRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// timelineRequest reads ?limit= and ?cursor=. A limit that is not an integer
// is treated as absent and later replaced by the default.
func timelineRequest(r *http.Request) models.TimelineRequest {
	query := r.URL.Query()

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil {
		limit = 0
	}

	return models.TimelineRequest{
		Limit:  limit,
		Cursor: query.Get("cursor"),
	}
}
