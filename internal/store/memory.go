package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed/models"
)

// MemoryStore keeps users and posts in process memory. It implements
// [UserRepository], [PostRepository] and [HealthChecker] with the same
// semantics as the SQL backends, including the keyset predicate.
//
// Posts are kept per owner in timeline order so a page read only scans the
// owners in scope.
type MemoryStore struct {
	mu sync.RWMutex

	users       map[int64]models.User
	byUsername  map[string]int64
	postsByUser map[int64][]models.Post

	lastUserID int64
	lastPostID int64

	now func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[int64]models.User),
		byUsername:  make(map[string]int64),
		postsByUser: make(map[int64][]models.Post),
		now:         time.Now,
	}
}

// CreateUser implements [UserRepository].
func (m *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byUsername[user.Username]; taken {
		return models.User{}, ErrUsernameAlreadyExists
	}

	m.lastUserID++
	user.UserID = m.lastUserID
	user.Password = ""
	if user.CreatedAt.IsZero() {
		user.CreatedAt = m.now().UTC()
	}

	m.users[user.UserID] = user
	m.byUsername[user.Username] = user.UserID

	return user, nil
}

// FindUserByUsername implements [UserRepository].
func (m *MemoryStore) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byUsername[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return m.users[id], nil
}

// FindUserByID implements [UserRepository].
func (m *MemoryStore) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// CreatePost implements [PostRepository].
func (m *MemoryStore) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastPostID++
	post.ID = m.lastPostID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = m.now()
	}
	post.CreatedAt = post.CreatedAt.UTC()

	posts := m.postsByUser[post.OwnerID]
	at, _ := slices.BinarySearchFunc(posts, post, compareTimeline)
	m.postsByUser[post.OwnerID] = slices.Insert(posts, at, post)

	return post, nil
}

// ListPosts implements [PostRepository].
func (m *MemoryStore) ListPosts(ctx context.Context, query models.TimelineQuery) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(query.OwnerIDs) == 0 || query.Limit <= 0 {
		return []models.Post{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[int64]struct{}, len(query.OwnerIDs))
	result := make([]models.Post, 0, query.Limit)
	for _, ownerID := range query.OwnerIDs {
		if _, dup := seen[ownerID]; dup {
			continue
		}
		seen[ownerID] = struct{}{}

		posts := m.postsByUser[ownerID]
		start := 0
		if query.After != nil {
			// first post strictly after the cursor position
			start, _ = slices.BinarySearchFunc(posts, *query.After, func(p models.Post, c models.Cursor) int {
				if c.Admits(p) {
					return 1
				}
				return -1
			})
		}

		end := min(start+query.Limit, len(posts))
		result = append(result, posts[start:end]...)
	}

	slices.SortFunc(result, compareTimeline)
	if len(result) > query.Limit {
		result = result[:query.Limit]
	}

	return slices.Clip(result), nil
}

// Ping implements [HealthChecker].
func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// compareTimeline orders posts by (created_at DESC, id DESC).
func compareTimeline(a, b models.Post) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}
