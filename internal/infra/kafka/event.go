package kafka

import (
	"encoding/json"
	"fmt"
)

// 视频索引事件类型
const (
	EventVideoUpsert   = "upsert"
	EventVideoDelete   = "delete"
	EventChannelRename = "channel"
)

// VideoEvent 搜索索引同步消息体
// upsert/delete 使用 VideoID，channel 使用 UserID（频道名变更后重建该用户全部视频）
type VideoEvent struct {
	Type    string `json:"type"`
	VideoID int64  `json:"video_id,omitempty"`
	UserID  int64  `json:"user_id,omitempty"`
}

// Key 分区键，同一视频或同一频道的事件落在同一分区以保持顺序
func (e *VideoEvent) Key() string {
	if e.Type == EventChannelRename {
		return fmt.Sprintf("user-%d", e.UserID)
	}
	return fmt.Sprintf("video-%d", e.VideoID)
}

// Validate 校验事件字段
func (e *VideoEvent) Validate() error {
	switch e.Type {
	case EventVideoUpsert, EventVideoDelete:
		if e.VideoID <= 0 {
			return fmt.Errorf("video event %q: missing video_id", e.Type)
		}
	case EventChannelRename:
		if e.UserID <= 0 {
			return fmt.Errorf("video event %q: missing user_id", e.Type)
		}
	default:
		return fmt.Errorf("unknown video event type %q", e.Type)
	}
	return nil
}

// DecodeVideoEvent 解析并校验消息体
func DecodeVideoEvent(data []byte) (*VideoEvent, error) {
	var ev VideoEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to unmarshal video event: %w", err)
	}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return &ev, nil
}
