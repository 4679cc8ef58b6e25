package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgram/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestFollowRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewFollowRepository(sqlxDB)

	ctx := context.Background()
	followerID := uuid.New().String()
	followingID := uuid.New().String()

	t.Run("Успешное создание подписки", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO follows`).
			WithArgs(sqlmock.AnyArg(), followerID, followingID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		err := repo.Create(ctx, follow)

		assert.NoError(t, err)
		assert.NotEmpty(t, follow.FollowID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Дубликат подписки превращается в DuplicateError", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO follows`).
			WithArgs(sqlmock.AnyArg(), followerID, followingID, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "unique_follower_following"})

		follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		err := repo.Create(ctx, follow)

		assert.Error(t, err)
		assert.Equal(t, models.KindDuplicate, models.KindOf(err))
	})

	t.Run("Check-констрейнт самоподписки превращается в SelfReferenceError", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO follows`).
			WithArgs(sqlmock.AnyArg(), followerID, followerID, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23514", Constraint: "no_self_follow"})

		follow := &models.Follow{FollowerID: followerID, FollowingID: followerID}
		err := repo.Create(ctx, follow)

		assert.Error(t, err)
		assert.Equal(t, models.KindSelfReference, models.KindOf(err))
	})
}

func TestFollowRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewFollowRepository(sqlxDB)

	ctx := context.Background()
	followerID := uuid.New().String()
	followingID := uuid.New().String()

	t.Run("Успешное удаление подписки", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM follows`).
			WithArgs(followerID, followingID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, followerID, followingID)

		assert.NoError(t, err)
	})

	t.Run("Отписка без подписки возвращает NotFoundError", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM follows`).
			WithArgs(followerID, followingID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, followerID, followingID)

		assert.Error(t, err)
		assert.Equal(t, models.KindNotFound, models.KindOf(err))
	})
}

func TestFollowRepository_ListFollowers(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewFollowRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"follow_id", "user_id", "username", "display_name", "created_at"}).
		AddRow(uuid.New().String(), uuid.New().String(), "user2", "User Two", now).
		AddRow(uuid.New().String(), uuid.New().String(), "user1", "User One", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT f.follow_id, u.user_id, u.username, u.display_name, f.created_at`).
		WithArgs(userID).
		WillReturnRows(rows)

	edges, err := repo.ListFollowers(ctx, userID)

	require.NoError(t, err)
	require.Len(t, edges, 2)
	// свежая подписка первой
	assert.Equal(t, "user2", edges[0].Username)
	assert.Equal(t, "user1", edges[1].Username)
}
