package elasticsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vidshare-go/internal/config"
	"vidshare-go/pkg/logger"

	"github.com/codeGROOVE-dev/retry"
	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// Client Elasticsearch 客户端及其视频索引
type Client struct {
	es    *elasticsearch.Client
	index string
}

// New 创建 Elasticsearch 客户端，启动阶段集群未就绪时重试
func New(ctx context.Context, cfg *config.ElasticsearchConfig) (*Client, error) {
	hosts := make([]string, 0, len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}

	if len(hosts) == 0 {
		return nil, fmt.Errorf("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	err = retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			resp, err := es.Ping(es.Ping.WithContext(pingCtx))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.IsError() {
				return fmt.Errorf("ping status: %s", resp.Status())
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("Elasticsearch not ready, retrying", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ping elasticsearch: %w", err)
	}

	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts))
	return &Client{es: es, index: cfg.VideosIndex()}, nil
}

// Index 返回视频索引名
func (c *Client) Index() string {
	return c.index
}

// Close 释放客户端
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.es = nil
	logger.Info("Elasticsearch client closed")
	return nil
}
