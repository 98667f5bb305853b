package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/pagination"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/models"
)

type postService struct {
	users    store.UserRepository
	posts    store.PostRepository
	timeline TimelineService

	queryTimeout time.Duration
	now          func() time.Time

	logger *logger.Logger
}

// NewPostService constructs a PostService. Reads go through timeline; writes
// go straight to posts.
func NewPostService(users store.UserRepository, posts store.PostRepository, timeline TimelineService, dbCfg config.DB, logger *logger.Logger) PostService {
	return &postService{
		users:        users,
		posts:        posts,
		timeline:     timeline,
		queryTimeout: dbCfg.QueryTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

// Create stores a new post of the caller. Content is trimmed first.
func (s *postService) Create(ctx context.Context, identity models.Identity, req models.CreatePostRequest) (models.PostResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.resolveUser(ctx, identity)
	if err != nil {
		return models.PostResponse{}, err
	}

	ctx, cancel := s.withQueryTimeout(ctx)
	defer cancel()

	post, err := s.posts.CreatePost(ctx, models.Post{
		OwnerID:   user.UserID,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*postService.Create").Int64("user_id", user.UserID).Msg("post creation failed")
		return models.PostResponse{}, fmt.Errorf("post creation failed: %w", err)
	}

	log.Info().Str("func", "*postService.Create").Int64("user_id", user.UserID).Int64("post_id", post.ID).Msg("post created")

	return toPostResponse(post, user.Username), nil
}

// Timeline returns a page of the caller's own timeline.
func (s *postService) Timeline(ctx context.Context, identity models.Identity, req models.TimelineRequest) (models.TimelineResponse, error) {
	user, err := s.resolveUser(ctx, identity)
	if err != nil {
		return models.TimelineResponse{}, err
	}

	return s.page(ctx, identity, user, []int64{user.UserID}, req)
}

// UserPosts returns a page of userID's posts. Callers may only read their own.
func (s *postService) UserPosts(ctx context.Context, identity models.Identity, userID int64, req models.TimelineRequest) (models.TimelineResponse, error) {
	user, err := s.resolveUser(ctx, identity)
	if err != nil {
		return models.TimelineResponse{}, err
	}

	if userID != user.UserID {
		logger.FromContext(ctx).Debug().
			Str("func", "*postService.UserPosts").
			Int64("user_id", user.UserID).
			Int64("requested_user_id", userID).
			Msg("read outside own scope")
		return models.TimelineResponse{}, ErrForbidden
	}

	return s.page(ctx, identity, user, []int64{userID}, req)
}

func (s *postService) page(ctx context.Context, identity models.Identity, user models.User, scope []int64, req models.TimelineRequest) (models.TimelineResponse, error) {
	cursor, err := pagination.DecodeCursor(req.Cursor)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*postService.page").Msg("rejecting cursor")
		return models.TimelineResponse{}, err
	}

	page, err := s.timeline.Fetch(ctx, identity, scope, req.Limit, cursor)
	if err != nil {
		return models.TimelineResponse{}, err
	}

	usernames, err := s.usernames(ctx, user, page.Items)
	if err != nil {
		return models.TimelineResponse{}, err
	}

	resp := models.TimelineResponse{Items: make([]models.PostResponse, 0, len(page.Items))}
	for _, p := range page.Items {
		resp.Items = append(resp.Items, toPostResponse(p, usernames[p.OwnerID]))
	}
	if page.NextCursor != nil {
		next := pagination.EncodePosition(*page.NextCursor)
		resp.NextCursor = &next
	}

	return resp, nil
}

// resolveUser loads the user named by identity. A valid token whose user is
// gone, or whose user id no longer matches, yields ErrUserNoLongerExists.
func (s *postService) resolveUser(ctx context.Context, identity models.Identity) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := s.withQueryTimeout(ctx)
	defer cancel()

	user, err := s.users.FindUserByUsername(ctx, identity.Subject)
	if errors.Is(err, store.ErrUserNotFound) || (err == nil && user.UserID != identity.UserID) {
		log.Warn().Str("func", "*postService.resolveUser").Int64("user_id", identity.UserID).Msg("token user no longer exists")
		return models.User{}, ErrUserNoLongerExists
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.resolveUser").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// usernames maps the owners of posts to their usernames, starting from the
// already resolved caller.
func (s *postService) usernames(ctx context.Context, caller models.User, posts []models.Post) (map[int64]string, error) {
	names := map[int64]string{caller.UserID: caller.Username}
	for _, p := range posts {
		if _, ok := names[p.OwnerID]; ok {
			continue
		}

		owner, err := s.users.FindUserByID(ctx, p.OwnerID)
		if err != nil && !errors.Is(err, store.ErrUserNotFound) {
			return nil, fmt.Errorf("post owner lookup failed: %w", err)
		}
		names[p.OwnerID] = owner.Username
	}
	return names, nil
}

func (s *postService) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func toPostResponse(p models.Post, username string) models.PostResponse {
	return models.PostResponse{
		ID:        p.ID,
		UserID:    p.OwnerID,
		Username:  username,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}
