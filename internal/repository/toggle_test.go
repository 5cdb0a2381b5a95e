package repository

import (
	"testing"

	"vidshare-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likeNotification(ownerID int64) *model.Notification {
	return &model.Notification{UserID: ownerID, Message: `bob liked your video "Cats"`, Link: "/watch/1"}
}

func TestLikeRepository_ToggleTwiceRestoresState(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	bob := seedUser(t, db, "bob", "Bob TV")
	video := seedVideo(t, db, alice.ID, "Cats")
	repo := NewLikeRepository(db)

	liked, count, err := repo.Toggle(video.ID, bob.ID, likeNotification(alice.ID))
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = repo.Toggle(video.ID, bob.ID, likeNotification(alice.ID))
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)

	// 取消点赞不产生通知
	assert.Equal(t, int64(1), countRows(t, db, &model.Notification{}))
	assert.Equal(t, int64(0), countRows(t, db, &model.VideoLike{}))

	ids, err := repo.LikerIDs(video.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLikeRepository_ToggleWithoutNotification(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	video := seedVideo(t, db, alice.ID, "Cats")
	repo := NewLikeRepository(db)

	liked, count, err := repo.Toggle(video.ID, alice.ID, nil)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(0), countRows(t, db, &model.Notification{}))
}

func TestLikeRepository_CountIsPerVideo(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	first := seedVideo(t, db, alice.ID, "first")
	second := seedVideo(t, db, alice.ID, "second")
	repo := NewLikeRepository(db)

	_, _, err := repo.Toggle(first.ID, 2, nil)
	require.NoError(t, err)
	_, count, err := repo.Toggle(first.ID, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, count, err = repo.Toggle(second.ID, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubscriptionRepository_Toggle(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", "Alice TV")
	bob := seedUser(t, db, "bob", "Bob TV")
	repo := NewSubscriptionRepository(db)
	notify := func() *model.Notification {
		return &model.Notification{UserID: alice.ID, Message: "bob subscribed to your channel"}
	}

	subscribed, count, err := repo.Toggle(alice.ID, bob.ID, notify())
	require.NoError(t, err)
	assert.True(t, subscribed)
	assert.Equal(t, int64(1), count)

	ids, err := repo.SubscriberIDs(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{bob.ID}, ids)

	subscribed, count, err = repo.Toggle(alice.ID, bob.ID, notify())
	require.NoError(t, err)
	assert.False(t, subscribed)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, int64(1), countRows(t, db, &model.Notification{}))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%cats%", containsPattern("CaTs"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
