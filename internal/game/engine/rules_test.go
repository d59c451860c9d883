package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundSequence(t *testing.T) {
	assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1, 2, 3, 4, 5, 6, 7, 8}, RoundSequence(8))
	assert.Equal(t, []int{4, 3, 2, 1, 2, 3, 4}, RoundSequence(4))
	assert.Len(t, RoundSequence(16), 31)
}

func TestCheckCapacity(t *testing.T) {
	assert.NoError(t, CheckCapacity(6, 8))
	assert.NoError(t, CheckCapacity(12, 4))
	assert.NoError(t, CheckCapacity(3, 16))

	err := CheckCapacity(7, 8)
	assert.True(t, errors.Is(err, ErrCapacity), "7 players at base 8 should exceed capacity")
	assert.True(t, errors.Is(CheckCapacity(4, 16), ErrCapacity))
	assert.True(t, errors.Is(CheckCapacity(13, 4), ErrCapacity))

	assert.True(t, errors.Is(CheckCapacity(2, 5), ErrInvalidInput))
}

func TestMaxPlayers(t *testing.T) {
	for base, want := range map[int]int{4: 12, 8: 6, 16: 3} {
		got, err := MaxPlayers(base)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Less(t, got*base, DeckSize)
	}
	_, err := MaxPlayers(0)
	assert.Error(t, err)
	assert.Equal(t, []int{4, 8, 16}, BaseOptions())
}

func TestPoints(t *testing.T) {
	cases := []struct {
		bid, tricks, points int
		hit                 bool
	}{
		{0, 0, 10, true},
		{1, 1, 21, true},
		{3, 3, 43, true},
		{2, 1, 0, false},
		{0, 2, 0, false},
	}
	for _, c := range cases {
		pts, hit := Points(c.bid, c.tricks)
		assert.Equal(t, c.points, pts, "bid=%d tricks=%d", c.bid, c.tricks)
		assert.Equal(t, c.hit, hit)
	}
}
