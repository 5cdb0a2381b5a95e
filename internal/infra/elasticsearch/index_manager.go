package elasticsearch

import (
	"context"
	"fmt"
	"strings"

	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
)

// videosIndexMapping 视频索引 mapping
// 搜索使用大小写不敏感的 wildcard 子串匹配，title 和 channel_name 均需要 keyword 形式
const videosIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"id": {"type": "long"},
			"owner_id": {"type": "long"},
			"title": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword"}}
			},
			"channel_name": {"type": "keyword"},
			"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
		}
	}
}`

// EnsureVideosIndex 确保视频索引存在，不存在则创建
func (c *Client) EnsureVideosIndex(ctx context.Context) error {
	resp, err := c.es.Indices.Exists([]string{c.index}, c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode == 200 {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", c.index))
		return nil
	}

	resp, err = c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(strings.NewReader(videosIndexMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", c.index))
	return nil
}
