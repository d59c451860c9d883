package engine

import (
	"fmt"
	"sort"
)

const (
	DeckSize         = 52
	DefaultBaseCards = 8
	MinPlayers       = 2
)

// 起始手牌数 -> 最大人数，保证 players × base < 52
var baseHandOptions = map[int]int{
	4:  12,
	8:  6,
	16: 3,
}

// BaseOptions 允许的起始手牌数（升序）
func BaseOptions() []int {
	out := make([]int, 0, len(baseHandOptions))
	for b := range baseHandOptions {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// MaxPlayers 返回该起始手牌数允许的最大人数
func MaxPlayers(base int) (int, error) {
	limit, ok := baseHandOptions[base]
	if !ok {
		return 0, fmt.Errorf("%w: invalid base hand size %d", ErrInvalidInput, base)
	}
	return limit, nil
}

// CheckCapacity 校验人数与起始手牌数的组合
func CheckCapacity(players, base int) error {
	limit, err := MaxPlayers(base)
	if err != nil {
		return err
	}
	if players > limit || players*base >= DeckSize {
		return fmt.Errorf("%w for base %d: maximum %d players", ErrCapacity, base, limit)
	}
	return nil
}

// RoundSequence 从 base 递减到 1，再从 2 递增回 base
func RoundSequence(base int) []int {
	seq := make([]int, 0, 2*base-1)
	for n := base; n >= 1; n-- {
		seq = append(seq, n)
	}
	for n := 2; n <= base; n++ {
		seq = append(seq, n)
	}
	return seq
}

// Points 叫中得 10 + 11×bid，没中 0 分
func Points(bid, tricks int) (int, bool) {
	if bid != tricks {
		return 0, false
	}
	return 10 + 11*bid, true
}
