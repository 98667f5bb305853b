package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/pagination"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/models"
)

type timelineService struct {
	posts        store.PostRepository
	limits       pagination.Limits
	queryTimeout time.Duration

	logger *logger.Logger
}

// NewTimelineService constructs the keyset pagination engine over posts.
func NewTimelineService(posts store.PostRepository, timelineCfg config.Timeline, dbCfg config.DB, logger *logger.Logger) TimelineService {
	return &timelineService{
		posts:        posts,
		limits:       pagination.NewLimits(timelineCfg),
		queryTimeout: dbCfg.QueryTimeout,
		logger:       logger,
	}
}

// Fetch implements TimelineService.
//
// The store read is bounded by the query timeout and by ctx. Exactly limit
// items are requested and no extra row is probed, so a page that happens to
// end exactly at the last post still carries a NextCursor; the following
// request returns an empty page.
func (s *timelineService) Fetch(ctx context.Context, identity models.Identity, scope []int64, limit int, cursor *models.Cursor) (models.Page, error) {
	log := logger.FromContext(ctx)

	limit = s.limits.Normalize(limit)
	if len(scope) == 0 {
		return models.Page{Items: []models.Post{}}, nil
	}

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	posts, err := s.posts.ListPosts(ctx, models.TimelineQuery{
		OwnerIDs: slices.Clone(scope),
		Limit:    limit,
		After:    cursor,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*timelineService.Fetch").
			Int64("user_id", identity.UserID).
			Msg("listing posts failed")
		return models.Page{}, fmt.Errorf("listing posts failed: %w", err)
	}

	page := models.Page{Items: posts}
	if len(posts) == limit {
		next := posts[len(posts)-1].Position()
		page.NextCursor = &next
	}

	log.Debug().
		Str("func", "*timelineService.Fetch").
		Int("limit", limit).
		Int("items", len(posts)).
		Bool("first_page", cursor == nil).
		Bool("has_next", page.NextCursor != nil).
		Msg("timeline page fetched")

	return page, nil
}
