package repository

import (
	"testing"

	"vidshare-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create_WritesCountAndNotification(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	video := seedVideo(t, db, alice.ID, "Cats")
	repo := NewCommentRepository(db)

	comment := &model.Comment{UserID: 2, Username: "bob", VideoID: video.ID, Content: "nice"}
	notify := &model.Notification{UserID: alice.ID, Message: `bob commented on your video "Cats"`}
	require.NoError(t, repo.Create(comment, notify))

	assert.NotZero(t, comment.ID)
	assert.Equal(t, int64(1), countRows(t, db, &model.Notification{}))

	stored, err := NewVideoRepository(db).GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.CommentCount)
}

func TestCommentRepository_Create_NotificationFailureRollsBack(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	video := seedVideo(t, db, alice.ID, "Cats")
	require.NoError(t, db.Create(&model.Notification{ID: 1, UserID: alice.ID, Message: "earlier"}).Error)
	repo := NewCommentRepository(db)

	// 主键冲突使通知写入失败
	err := repo.Create(
		&model.Comment{UserID: 2, Username: "bob", VideoID: video.ID, Content: "nice"},
		&model.Notification{ID: 1, UserID: alice.ID, Message: "dup"},
	)
	require.Error(t, err)

	assert.Equal(t, int64(0), countRows(t, db, &model.Comment{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.Notification{}))
	stored, err := NewVideoRepository(db).GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.CommentCount)
}

func TestCommentRepository_Create_CommentFailureWritesNoNotification(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	video := seedVideo(t, db, alice.ID, "Cats")
	require.NoError(t, db.Create(&model.Comment{ID: 5, UserID: 2, Username: "bob", VideoID: video.ID, Content: "first"}).Error)
	repo := NewCommentRepository(db)

	err := repo.Create(
		&model.Comment{ID: 5, UserID: 2, Username: "bob", VideoID: video.ID, Content: "again"},
		&model.Notification{UserID: alice.ID, Message: "bob commented"},
	)
	require.Error(t, err)

	assert.Equal(t, int64(0), countRows(t, db, &model.Notification{}))
	stored, err := NewVideoRepository(db).GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.CommentCount)
}

func TestCommentRepository_DeleteKeepsRepliesAndCountNonNegative(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	video := seedVideo(t, db, alice.ID, "Cats")
	repo := NewCommentRepository(db)

	root := &model.Comment{UserID: alice.ID, Username: "alice", VideoID: video.ID, Content: "root"}
	require.NoError(t, repo.Create(root, nil))
	reply := &model.Comment{UserID: alice.ID, Username: "alice", VideoID: video.ID, Content: "reply", ParentID: &root.ID}
	require.NoError(t, repo.Create(reply, nil))

	deleted, err := repo.Delete(root)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(root)
	require.NoError(t, err)
	assert.False(t, deleted)

	remaining, err := repo.ListByVideo(video.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "reply", remaining[0].Content)

	stored, err := NewVideoRepository(db).GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.CommentCount)
}

func TestCommentRepository_ListPaginates(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	video := seedVideo(t, db, alice.ID, "Cats")
	other := seedVideo(t, db, alice.ID, "Dogs")
	repo := NewCommentRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&model.Comment{UserID: alice.ID, Username: "alice", VideoID: video.ID, Content: "c"}, nil))
	}
	require.NoError(t, repo.Create(&model.Comment{UserID: alice.ID, Username: "alice", VideoID: other.ID, Content: "c"}, nil))

	comments, total, err := repo.List(CommentFilter{VideoID: &video.ID}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, comments, 2)
	assert.Greater(t, comments[0].ID, comments[1].ID)
}
