package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyTiesAndMegaWinner(t *testing.T) {
	players := []*Player{
		{ID: "a", TotalScore: 120, CorrectBids: 5},
		{ID: "b", TotalScore: 120, CorrectBids: 3},
		{ID: "c", TotalScore: 80, CorrectBids: 5},
	}
	st := Tally(players)
	assert.Equal(t, []string{"a", "b"}, st.ScoreWinners)
	assert.Equal(t, []string{"a", "c"}, st.GuessWinners)
	assert.Equal(t, []string{"a"}, st.MegaWinners)
}

func TestTallyNoMegaWinner(t *testing.T) {
	st := Tally([]*Player{
		{ID: "a", TotalScore: 50, CorrectBids: 1},
		{ID: "b", TotalScore: 10, CorrectBids: 2},
	})
	assert.Equal(t, []string{"a"}, st.ScoreWinners)
	assert.Equal(t, []string{"b"}, st.GuessWinners)
	assert.Empty(t, st.MegaWinners)
	assert.NotNil(t, st.MegaWinners)
}

func TestTallyAllZero(t *testing.T) {
	st := Tally([]*Player{{ID: "a"}, {ID: "b"}})
	assert.Equal(t, []string{"a", "b"}, st.ScoreWinners)
	assert.Equal(t, []string{"a", "b"}, st.GuessWinners)
	assert.Equal(t, []string{"a", "b"}, st.MegaWinners)
	assert.Empty(t, Tally(nil).ScoreWinners)
}
