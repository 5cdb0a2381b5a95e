package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"vidshare-go/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// versionTTL 版本号的存活时间，需长于任何一次回源读库的耗时
const versionTTL = time.Hour

// setIfVersion 版本号未变化时才写入详情，KEYS[1]=详情 KEYS[2]=版本号
var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[2] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// VideoCache 视频详情的 cache-aside 缓存，client 为 nil 时所有操作为空操作
// 每个视频带一个版本号，Invalidate 时递增；回源后的写入只在版本号未变时生效
type VideoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVideoCache 创建视频详情缓存
func NewVideoCache(client *redis.Client, ttl time.Duration) *VideoCache {
	return &VideoCache{client: client, ttl: ttl}
}

// Get 读取缓存，未命中返回 nil 数据与当前版本号
func (c *VideoCache) Get(ctx context.Context, videoID int64) ([]byte, int64, error) {
	if c == nil || c.client == nil {
		return nil, 0, nil
	}
	vals, err := c.client.MGet(ctx, videoKey(videoID), versionKey(videoID)).Result()
	if err != nil {
		return nil, 0, err
	}

	version, err := parseVersion(vals[1])
	if err != nil {
		return nil, 0, err
	}
	data, ok := vals[0].(string)
	if !ok {
		metrics.CacheMisses.Inc()
		return nil, version, nil
	}
	metrics.CacheHits.Inc()
	return []byte(data), version, nil
}

// Set 回源后写入缓存，version 为 Get 返回的版本号，期间被 Invalidate 过则放弃写入
func (c *VideoCache) Set(ctx context.Context, videoID int64, data []byte, version int64) error {
	if c == nil || c.client == nil {
		return nil
	}
	err := setIfVersion.Run(ctx, c.client,
		[]string{videoKey(videoID), versionKey(videoID)},
		data, strconv.FormatInt(version, 10), c.ttl.Milliseconds(),
	).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// Invalidate 删除缓存并递增版本号，任何修改视频详情内容的操作之后调用
func (c *VideoCache) Invalidate(ctx context.Context, videoIDs ...int64) error {
	if c == nil || c.client == nil || len(videoIDs) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range videoIDs {
			pipe.Incr(ctx, versionKey(id))
			pipe.Expire(ctx, versionKey(id), versionTTL)
			pipe.Del(ctx, videoKey(id))
		}
		return nil
	})
	return err
}

func parseVersion(v interface{}) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	version, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad cache version %q: %w", s, err)
	}
	return version, nil
}

func videoKey(videoID int64) string {
	return fmt.Sprintf("video:%d", videoID)
}

func versionKey(videoID int64) string {
	return fmt.Sprintf("video:%d:ver", videoID)
}
