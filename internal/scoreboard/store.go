package scoreboard

import "context"

// Store 只支持追加与全量读取
type Store interface {
	// Append 追加一条比赛记录
	Append(ctx context.Context, e Entry) error
	// List 按追加顺序返回全部记录
	List(ctx context.Context) ([]Entry, error)
}
