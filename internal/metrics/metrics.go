package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration HTTP 请求耗时，按路由模板、方法、状态码区分
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidshare_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by route, method and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// RequestsInFlight 正在处理的请求数
	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidshare_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// Toggles 成员关系翻转次数，kind 为 like/subscribe/watch_later，state 为 added/removed
	Toggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidshare_toggles_total",
			Help: "Membership toggles, by kind and resulting state.",
		},
		[]string{"kind", "state"},
	)

	// Views 首次观看计数
	Views = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidshare_video_views_total",
			Help: "First-time video views recorded.",
		},
	)

	// Notifications 生成的通知数
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidshare_notifications_total",
			Help: "Notifications created, by kind.",
		},
		[]string{"kind"},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidshare_cache_hits_total",
			Help: "Video detail cache hits.",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidshare_cache_misses_total",
			Help: "Video detail cache misses.",
		},
	)

	// SearchFallbacks Elasticsearch 不可用时回退数据库查询的次数
	SearchFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidshare_search_fallbacks_total",
			Help: "Searches served by the database because Elasticsearch failed.",
		},
	)
)

var registerOnce sync.Once

// Register 向默认 Registry 注册全部指标，重复调用无副作用
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestDuration,
			RequestsInFlight,
			Toggles,
			Views,
			Notifications,
			CacheHits,
			CacheMisses,
			SearchFallbacks,
		)
	})
}
