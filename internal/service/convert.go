package service

import (
	"strconv"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
)

func toUserInfo(u *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		ChannelName:    u.ChannelName,
		ProfilePicture: u.ProfilePicture,
		JoinedDate:     u.JoinedDate,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toChannelBrief(u *model.User) dto.ChannelBrief {
	return dto.ChannelBrief{
		ID:             u.ID,
		Username:       u.Username,
		ChannelName:    u.ChannelName,
		ProfilePicture: u.ProfilePicture,
	}
}

func toChannelBriefs(users []model.User) []dto.ChannelBrief {
	out := make([]dto.ChannelBrief, 0, len(users))
	for i := range users {
		out = append(out, toChannelBrief(&users[i]))
	}
	return out
}

// toVideoInfo Owner 未加载时不输出上传者信息
func toVideoInfo(v *model.Video) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Views:        v.Views,
		Duration:     v.Duration,
		Tags:         []string(v.Tags),
		CommentCount: v.CommentCount,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if info.Tags == nil {
		info.Tags = []string{}
	}
	if v.Owner.ID != 0 {
		info.Owner = &dto.OwnerBrief{
			ID:             v.Owner.ID,
			Username:       v.Owner.Username,
			ChannelName:    v.Owner.ChannelName,
			ProfilePicture: v.Owner.ProfilePicture,
			Subscribers:    []string{},
		}
	}
	return info
}

func toVideoInfos(videos []model.Video) []dto.VideoInfo {
	out := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		out = append(out, *toVideoInfo(&videos[i]))
	}
	return out
}

func toCommentInfo(c *model.Comment) *dto.CommentInfo {
	return &dto.CommentInfo{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		Username:  c.Username,
		VideoID:   c.VideoID,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentSummary(c *model.Comment) dto.CommentSummary {
	return dto.CommentSummary{
		Content:   c.Content,
		UserID:    c.UserID,
		VideoID:   c.VideoID,
		CreatedAt: c.CreatedAt,
	}
}

func toNotificationInfo(n *model.Notification) dto.NotificationInfo {
	return dto.NotificationInfo{
		ID:        n.ID,
		User:      n.UserID,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func idStrings(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out
}
