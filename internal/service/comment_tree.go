package service

import (
	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
)

// BuildCommentForest 将按创建时间升序排列的评论组装为评论树
// 根节点与回复均保持输入顺序，父评论不在输入中的回复被丢弃
func BuildCommentForest(comments []model.Comment) []*dto.CommentNode {
	nodes := make(map[int64]*dto.CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &dto.CommentNode{
			CommentInfo: *toCommentInfo(&comments[i]),
			Replies:     []*dto.CommentNode{},
		}
	}

	roots := make([]*dto.CommentNode, 0)
	for i := range comments {
		node := nodes[comments[i].ID]
		if comments[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*comments[i].ParentID]; ok && parent != node {
			parent.Replies = append(parent.Replies, node)
		}
	}
	return roots
}
