package service

import (
	"context"
	"testing"
	"time"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func setupCommentService() (*CommentService, *mockCommentRepo, *mockVideoRepo, *mockUserRepo, *mockCache) {
	comments := new(mockCommentRepo)
	videos := new(mockVideoRepo)
	users := new(mockUserRepo)
	cache := new(mockCache)
	return NewCommentService(comments, videos, users, cache), comments, videos, users, cache
}

func TestBuildCommentForest(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	comments := []model.Comment{
		{ID: 1, Content: "root a", CreatedAt: base},
		{ID: 2, Content: "reply a1", ParentID: ptr(int64(1)), CreatedAt: base.Add(time.Minute)},
		{ID: 3, Content: "root b", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 4, Content: "reply a1x", ParentID: ptr(int64(2)), CreatedAt: base.Add(3 * time.Minute)},
		{ID: 5, Content: "orphan", ParentID: ptr(int64(42)), CreatedAt: base.Add(4 * time.Minute)},
		{ID: 6, Content: "reply a2", ParentID: ptr(int64(1)), CreatedAt: base.Add(5 * time.Minute)},
	}

	forest := BuildCommentForest(comments)

	require.Len(t, forest, 2)
	assert.Equal(t, int64(1), forest[0].ID)
	assert.Equal(t, int64(3), forest[1].ID)
	assert.Empty(t, forest[1].Replies)
	assert.NotNil(t, forest[1].Replies)

	require.Len(t, forest[0].Replies, 2)
	assert.Equal(t, int64(2), forest[0].Replies[0].ID)
	assert.Equal(t, int64(6), forest[0].Replies[1].ID)

	require.Len(t, forest[0].Replies[0].Replies, 1)
	assert.Equal(t, int64(4), forest[0].Replies[0].Replies[0].ID)
}

func TestBuildCommentForest_ReplyBeforeParent(t *testing.T) {
	comments := []model.Comment{
		{ID: 2, ParentID: ptr(int64(1))},
		{ID: 1},
	}

	forest := BuildCommentForest(comments)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Replies, 1)
	assert.Equal(t, int64(2), forest[0].Replies[0].ID)
}

func TestBuildCommentForest_Empty(t *testing.T) {
	forest := BuildCommentForest(nil)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestCommentService_Create(t *testing.T) {
	t.Run("notifies video owner", func(t *testing.T) {
		svc, comments, videos, users, cache := setupCommentService()
		videos.On("GetByID", int64(10)).Return(&model.Video{ID: 10, OwnerID: 1, Title: "Cats"}, nil)
		users.On("GetByID", int64(2)).Return(&model.User{ID: 2, Username: "bob"}, nil)
		comments.On("Create",
			mock.MatchedBy(func(c *model.Comment) bool {
				return c.UserID == 2 && c.Username == "bob" && c.VideoID == 10 && c.Content == "nice"
			}),
			mock.MatchedBy(func(n *model.Notification) bool {
				return n != nil && n.UserID == 1 && n.Message == `bob commented on your video "Cats"`
			}),
		).Return(nil)
		cache.On("Invalidate", mock.Anything, []int64{10}).Return(nil)

		info, err := svc.Create(context.Background(), 2, &dto.CommentCreateRequest{Content: " nice ", VideoID: 10})

		require.NoError(t, err)
		assert.Equal(t, "nice", info.Content)
		assert.Equal(t, "bob", info.Username)
		comments.AssertExpectations(t)
	})

	t.Run("owner comment has no notification", func(t *testing.T) {
		svc, comments, videos, users, cache := setupCommentService()
		videos.On("GetByID", int64(10)).Return(&model.Video{ID: 10, OwnerID: 1}, nil)
		users.On("GetByID", int64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
		comments.On("Create", mock.Anything, (*model.Notification)(nil)).Return(nil)
		cache.On("Invalidate", mock.Anything, []int64{10}).Return(nil)

		_, err := svc.Create(context.Background(), 1, &dto.CommentCreateRequest{Content: "mine", VideoID: 10})

		require.NoError(t, err)
		comments.AssertExpectations(t)
	})

	t.Run("unknown video", func(t *testing.T) {
		svc, comments, videos, _, _ := setupCommentService()
		videos.On("GetByID", int64(10)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(context.Background(), 1, &dto.CommentCreateRequest{Content: "x", VideoID: 10})

		assert.ErrorIs(t, err, ErrVideoNotFound)
		comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("parent on another video", func(t *testing.T) {
		svc, comments, videos, users, _ := setupCommentService()
		videos.On("GetByID", int64(10)).Return(&model.Video{ID: 10, OwnerID: 1}, nil)
		users.On("GetByID", int64(2)).Return(&model.User{ID: 2}, nil)
		comments.On("GetByID", int64(5)).Return(&model.Comment{ID: 5, VideoID: 11}, nil)

		_, err := svc.Create(context.Background(), 2, &dto.CommentCreateRequest{Content: "x", VideoID: 10, ParentID: ptr(int64(5))})

		assert.ErrorIs(t, err, ErrParentVideoMismatch)
		comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing parent", func(t *testing.T) {
		svc, comments, videos, users, _ := setupCommentService()
		videos.On("GetByID", int64(10)).Return(&model.Video{ID: 10, OwnerID: 1}, nil)
		users.On("GetByID", int64(2)).Return(&model.User{ID: 2}, nil)
		comments.On("GetByID", int64(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(context.Background(), 2, &dto.CommentCreateRequest{Content: "x", VideoID: 10, ParentID: ptr(int64(5))})

		assert.ErrorIs(t, err, ErrParentNotFound)
	})

	t.Run("blank content", func(t *testing.T) {
		svc, _, videos, _, _ := setupCommentService()

		_, err := svc.Create(context.Background(), 2, &dto.CommentCreateRequest{Content: "   ", VideoID: 10})

		assert.ErrorIs(t, err, ErrCommentContentRequired)
		videos.AssertNotCalled(t, "GetByID", mock.Anything)
	})
}

func TestCommentService_UpdateAndDelete_RequireAuthor(t *testing.T) {
	svc, comments, _, _, _ := setupCommentService()
	comments.On("GetByID", int64(5)).Return(&model.Comment{ID: 5, UserID: 1, VideoID: 10}, nil)

	_, err := svc.Update(5, 2, &dto.CommentUpdateRequest{Content: "edited"})
	assert.ErrorIs(t, err, ErrCommentNoPermission)

	err = svc.Delete(context.Background(), 5, 2)
	assert.ErrorIs(t, err, ErrCommentNoPermission)

	comments.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything)
	comments.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCommentService_Delete_ByAuthor(t *testing.T) {
	svc, comments, _, _, cache := setupCommentService()
	comment := &model.Comment{ID: 5, UserID: 1, VideoID: 10}
	comments.On("GetByID", int64(5)).Return(comment, nil)
	comments.On("Delete", comment).Return(true, nil)
	cache.On("Invalidate", mock.Anything, []int64{10}).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 5, 1))
	comments.AssertExpectations(t)
}

func TestCommentService_Get_NotFound(t *testing.T) {
	svc, comments, _, _, _ := setupCommentService()
	comments.On("GetByID", int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(5)

	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentService_List_Pagination(t *testing.T) {
	svc, comments, _, _, _ := setupCommentService()
	videoID := int64(10)
	comments.On("List", repository.CommentFilter{VideoID: &videoID}, 10, 10).
		Return([]model.Comment{{ID: 11, Content: "c"}}, int64(21), nil)

	data, err := svc.List(&dto.CommentListQuery{VideoID: &videoID, Page: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(21), data.Total)
	assert.Equal(t, 2, data.Page)
	assert.Equal(t, int64(3), data.Pages)
	require.Len(t, data.Comments, 1)
	assert.Equal(t, "c", data.Comments[0].Content)
}
