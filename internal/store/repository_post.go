package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with the assigned ID.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.CreatedAt = storedTime(post.CreatedAt)
	query, args, err := buildCreatePostQuery(r.db.builder(), post)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// ListPosts runs the keyset page query. An empty owner set yields no rows
// without touching the database.
func (r *postRepository) ListPosts(ctx context.Context, query models.TimelineQuery) ([]models.Post, error) {
	if len(query.OwnerIDs) == 0 || query.Limit <= 0 {
		return []models.Post{}, nil
	}

	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListPostsQuery(r.db.builder(), query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var posts []models.Post
	err = r.db.withRetry(ctx, func() error {
		var qErr error
		posts, qErr = r.scanPosts(ctx, sqlQuery, args, query.Limit)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error listing posts")
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) scanPosts(ctx context.Context, query string, args []any, limit int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, limit)
	for rows.Next() {
		var p models.Post
		if err = rows.Scan(&p.ID, &p.OwnerID, &p.Content, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
