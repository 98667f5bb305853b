package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-feed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	alice, err := m.CreateUser(ctx, models.User{Username: "alice", Password: "plain", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.UserID)
	assert.Empty(t, alice.Password, "plain password is never stored")
	assert.False(t, alice.CreatedAt.IsZero())

	_, err = m.CreateUser(ctx, models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	byName, err := m.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, byName)

	byID, err := m.FindUserByID(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, alice, byID)

	_, err = m.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = m.FindUserByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_ListPostsKeyset(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// ids 1..4; posts 2 and 3 share a timestamp
	for _, at := range []time.Time{base, base.Add(time.Second), base.Add(time.Second), base.Add(2 * time.Second)} {
		_, err := m.CreatePost(ctx, models.Post{OwnerID: 1, Content: "x", CreatedAt: at})
		require.NoError(t, err)
	}
	_, err := m.CreatePost(ctx, models.Post{OwnerID: 2, Content: "other", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	first, err := m.ListPosts(ctx, models.TimelineQuery{OwnerIDs: []int64{1}, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3}, postIDs(first))

	after := first[len(first)-1].Position()
	second, err := m.ListPosts(ctx, models.TimelineQuery{OwnerIDs: []int64{1}, Limit: 2, After: &after})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, postIDs(second))

	both, err := m.ListPosts(ctx, models.TimelineQuery{OwnerIDs: []int64{1, 2, 1}, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4, 3}, postIDs(both))

	none, err := m.ListPosts(ctx, models.TimelineQuery{Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.CreatePost(ctx, models.Post{OwnerID: 1, Content: "x", CreatedAt: at})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	posts, err := m.ListPosts(ctx, models.TimelineQuery{OwnerIDs: []int64{1}, Limit: 50})
	require.NoError(t, err)
	require.Len(t, posts, 50)
	for i := 1; i < len(posts); i++ {
		assert.True(t, posts[i-1].Before(posts[i]), "posts must be strictly ordered")
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemoryStore()
	_, err := m.ListPosts(ctx, models.TimelineQuery{OwnerIDs: []int64{1}, Limit: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, m.Ping(ctx), context.Canceled)
}

func postIDs(posts []models.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
