package util

import (
	"encoding/base64"
	"time"

	"github.com/goccy/go-json"
)

// FeedCursor 信息流游标：最后一条返回记录的排序键。
// created_at 取微秒精度（对齐 MySQL datetime(6)），同一微秒内再按 id 兜底，
// 翻页期间有新插入也不会漏读或重复。
type FeedCursor struct {
	CreatedAt int64  `json:"t"`
	ID        uint64 `json:"id"`
}

// CreatedAtTime 还原排序键中的创建时间
func (c *FeedCursor) CreatedAtTime() time.Time {
	return time.UnixMicro(c.CreatedAt)
}

// EncodeFeedCursor 将排序键编码为 Base64 字符串
func EncodeFeedCursor(createdAt time.Time, id uint64) string {
	b, _ := json.Marshal(FeedCursor{CreatedAt: createdAt.UnixMicro(), ID: id})
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeFeedCursor 将前端传来的 Base64 字符串解码为排序键
func DecodeFeedCursor(cursor string) (*FeedCursor, error) {
	if cursor == "" {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return nil, err
	}
	var c FeedCursor
	if err = json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
