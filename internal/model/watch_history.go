package model

import "time"

// MaxWatchHistory 观看历史保留条数
const MaxWatchHistory = 100

// WatchEntry 一条观看记录
type WatchEntry struct {
	VideoID   int64     `json:"video"`
	WatchedAt time.Time `json:"watchedAt"`
}

// WatchHistory 最近观看在前的观看记录，同一视频只保留一条
type WatchHistory []WatchEntry

// Record 记录一次观看：移除该视频已有记录，插到最前，超出上限时截断最旧的记录
func (h WatchHistory) Record(videoID int64, at time.Time) WatchHistory {
	out := make(WatchHistory, 0, min(len(h)+1, MaxWatchHistory))
	out = append(out, WatchEntry{VideoID: videoID, WatchedAt: at})
	for _, e := range h {
		if len(out) == MaxWatchHistory {
			break
		}
		if e.VideoID == videoID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// VideoIDs 按顺序返回视频 ID
func (h WatchHistory) VideoIDs() []int64 {
	ids := make([]int64, 0, len(h))
	for _, e := range h {
		ids = append(ids, e.VideoID)
	}
	return ids
}
