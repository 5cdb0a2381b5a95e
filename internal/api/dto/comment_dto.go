package dto

import "time"

// CommentCreateRequest 发表评论或回复
type CommentCreateRequest struct {
	Content  string `json:"content" binding:"required,max=5000"`
	VideoID  int64  `json:"videoId" binding:"required"`
	ParentID *int64 `json:"parentId"`
}

// CommentUpdateRequest 更新评论请求
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// CommentListQuery 评论列表查询参数
type CommentListQuery struct {
	VideoID *int64 `form:"videoId"`
	UserID  *int64 `form:"userId"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

// CommentSummary 列表与单条查询返回的评论摘要
type CommentSummary struct {
	Content   string    `json:"content"`
	UserID    int64     `json:"userId"`
	VideoID   int64     `json:"videoId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentInfo 评论完整信息，Username 为发表时的用户名
type CommentInfo struct {
	ID        int64     `json:"_id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	VideoID   int64     `json:"videoId"`
	ParentID  *int64    `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentNode 评论树节点
type CommentNode struct {
	CommentInfo
	Replies []*CommentNode `json:"replies"`
}

// CommentListData 评论分页数据
type CommentListData struct {
	Comments []CommentSummary `json:"comments"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Pages    int64            `json:"pages"`
}
