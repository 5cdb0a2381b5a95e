package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// 标题命中的得分高于频道名命中，排序后标题命中在前
const (
	titleBoost   = 2.0
	channelBoost = 1.0
)

// searchPageSize 每页拉取的命中数，用 search_after 翻页直到取完
const searchPageSize = 500

// SearchVideoIDs 按标题或频道名做大小写不敏感的子串匹配，返回全部命中的视频 ID
// 结果按（标题命中优先，ID 升序）排列
func (c *Client) SearchVideoIDs(ctx context.Context, q string) ([]int64, error) {
	var ids []int64
	var after []interface{}
	for {
		hits, err := c.searchPage(ctx, buildSearchQuery(q, searchPageSize, after))
		if err != nil {
			return nil, err
		}
		for _, h := range hits {
			ids = append(ids, h.Source.ID)
		}
		if len(hits) < searchPageSize {
			break
		}
		after = hits[len(hits)-1].Sort
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

type searchHit struct {
	Source struct {
		ID int64 `json:"id"`
	} `json:"_source"`
	Sort []interface{} `json:"sort"`
}

func (c *Client) searchPage(ctx context.Context, query map[string]interface{}) ([]searchHit, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("es search: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("es search failed: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Hits []searchHit `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode es response: %w", err)
	}
	return result.Hits.Hits, nil
}

// buildSearchQuery after 为上一页最后一条命中的 sort 值，首页传 nil
func buildSearchQuery(q string, size int, after []interface{}) map[string]interface{} {
	pattern := "*" + escapeWildcard(q) + "*"
	clause := func(field string, boost float64) map[string]interface{} {
		return map[string]interface{}{
			"constant_score": map[string]interface{}{
				"filter": map[string]interface{}{
					"wildcard": map[string]interface{}{
						field: map[string]interface{}{
							"value":            pattern,
							"case_insensitive": true,
						},
					},
				},
				"boost": boost,
			},
		}
	}

	query := map[string]interface{}{
		"size":    size,
		"_source": []string{"id"},
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []interface{}{
					clause("title.keyword", titleBoost),
					clause("channel_name", channelBoost),
				},
				"minimum_should_match": 1,
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"id": map[string]string{"order": "asc"}},
		},
	}
	if len(after) > 0 {
		query["search_after"] = after
	}
	return query
}

// escapeWildcard 转义 wildcard 查询中的特殊字符，用户输入按字面量匹配
func escapeWildcard(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(s)
}
