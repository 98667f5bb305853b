package store

import (
	"github.com/MKhiriev/go-feed/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"
	postsTable = "posts"
)

var (
	userColumns = []string{"user_id", "username", "password_hash", "created_at"}
	postColumns = []string{"id", "user_id", "content", "created_at"}
)

// buildCreateUserQuery builds the INSERT of a new user returning its id.
// Only the id is returned: SQLite reports no column types for RETURNING
// expressions, so timestamps would come back as text.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

// buildFindUserQuery builds a single-user SELECT filtered by pred.
func buildFindUserQuery(b sq.StatementBuilderType, pred sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(pred).
		ToSql()
}

// buildCreatePostQuery builds the INSERT of a new post returning its id.
func buildCreatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(postsTable).
		Columns("user_id", "content", "created_at").
		Values(post.OwnerID, post.Content, post.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildListPostsQuery builds the keyset page query:
//
//	SELECT id, user_id, content, created_at FROM posts
//	WHERE user_id IN (...)
//	  [AND (created_at < c.at OR (created_at = c.at AND id < c.id))]
//	ORDER BY created_at DESC, id DESC
//	LIMIT n
//
// The (user_id, created_at DESC, id DESC) index serves both the filter and
// the order.
func buildListPostsQuery(b sq.StatementBuilderType, query models.TimelineQuery) (string, []any, error) {
	sel := b.Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"user_id": query.OwnerIDs})

	if query.After != nil {
		sel = sel.Where(sq.Or{
			sq.Lt{"created_at": query.After.CreatedAt},
			sq.And{
				sq.Eq{"created_at": query.After.CreatedAt},
				sq.Lt{"id": query.After.ID},
			},
		})
	}

	return sel.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(query.Limit)).
		ToSql()
}
