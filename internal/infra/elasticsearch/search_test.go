package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeWildcard(t *testing.T) {
	assert.Equal(t, "go", escapeWildcard("go"))
	assert.Equal(t, `a\*b\?c`, escapeWildcard("a*b?c"))
	assert.Equal(t, `back\\slash`, escapeWildcard(`back\slash`))
}

func TestBuildSearchQuery(t *testing.T) {
	raw, err := json.Marshal(buildSearchQuery("Cat?", 50, nil))
	require.NoError(t, err)
	body := string(raw)

	assert.NotContains(t, body, "search_after")

	assert.Contains(t, body, `"size":50`)
	assert.Contains(t, body, `"title.keyword"`)
	assert.Contains(t, body, `"channel_name"`)
	assert.Contains(t, body, `"case_insensitive":true`)
	assert.Contains(t, body, `"value":"*Cat\\?*"`)
	assert.Contains(t, body, `"minimum_should_match":1`)
}

func TestBuildSearchQuery_SearchAfter(t *testing.T) {
	raw, err := json.Marshal(buildSearchQuery("cat", 10, []interface{}{2.0, 17}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"search_after":[2,17]`)
}

// fakeSearchServer 按 search_after 分页返回 ID 为 1..total 的命中
func fakeSearchServer(t *testing.T, total int, requests *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)

		var req struct {
			Size        int       `json:"size"`
			SearchAfter []float64 `json:"search_after"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		start := 0
		if len(req.SearchAfter) == 2 {
			start = int(req.SearchAfter[1])
		}
		end := min(start+req.Size, total)

		hits := make([]string, 0, end-start)
		for id := start + 1; id <= end; id++ {
			hits = append(hits, fmt.Sprintf(`{"_source":{"id":%d},"sort":[2.0,%d]}`, id, id))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		fmt.Fprintf(w, `{"hits":{"hits":[%s]}}`, strings.Join(hits, ","))
	}))
}

func TestSearchVideoIDs_PagesThroughAllHits(t *testing.T) {
	var requests int32
	srv := fakeSearchServer(t, 1200, &requests)
	defer srv.Close()

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	c := &Client{es: es, index: "videos"}

	ids, err := c.SearchVideoIDs(context.Background(), "cats")
	require.NoError(t, err)

	require.Len(t, ids, 1200)
	assert.Equal(t, int64(1), ids[0])
	assert.Equal(t, int64(1200), ids[len(ids)-1])
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
}

func TestSearchVideoIDs_NoHits(t *testing.T) {
	var requests int32
	srv := fakeSearchServer(t, 0, &requests)
	defer srv.Close()

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	c := &Client{es: es, index: "videos"}

	ids, err := c.SearchVideoIDs(context.Background(), "cats")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestBulkBody(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	body, err := bulkBody("videos", []VideoDoc{
		{ID: 1, OwnerID: 7, Title: "first", ChannelName: "chan", CreatedAt: created},
		{ID: 2, OwnerID: 7, Title: "second", ChannelName: "chan", CreatedAt: created},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"index":{"_index":"videos","_id":"1"}}`, lines[0])
	assert.JSONEq(t, `{"index":{"_index":"videos","_id":"2"}}`, lines[2])

	var doc VideoDoc
	require.NoError(t, json.NewDecoder(bytes.NewReader([]byte(lines[3]))).Decode(&doc))
	assert.Equal(t, "second", doc.Title)
	assert.Equal(t, int64(7), doc.OwnerID)
}
