package engine

import (
	"testing"

	"Judgment/internal/game/card"

	"github.com/stretchr/testify/assert"
)

func mustCard(t testing.TB, code string) card.Card {
	t.Helper()
	c, err := card.Parse(code)
	if err != nil {
		t.Fatalf("bad card %q: %v", code, err)
	}
	return c
}

func cards(t testing.TB, codes ...string) []card.Card {
	out := make([]card.Card, 0, len(codes))
	for _, code := range codes {
		out = append(out, mustCard(t, code))
	}
	return out
}

func plays(t testing.TB, codes ...string) []Play {
	out := make([]Play, 0, len(codes))
	for i, code := range codes {
		out = append(out, Play{Seat: i, Card: mustCard(t, code)})
	}
	return out
}

func TestResolveTrick(t *testing.T) {
	cases := []struct {
		name  string
		plays []string
		trump card.Suit
		want  int
	}{
		{"lead holds against lower followers", []string{"5S", "3S", "4S"}, card.Hearts, 0},
		{"highest of lead suit wins", []string{"5S", "KS", "2S"}, card.Hearts, 1},
		{"off-suit discard never wins", []string{"5S", "AD", "4S"}, card.Hearts, 0},
		{"trump beats lead suit", []string{"AS", "2H", "KS"}, card.Hearts, 1},
		{"higher trump overrides lower trump", []string{"AS", "2H", "3H"}, card.Hearts, 2},
		{"lower trump cannot override", []string{"AS", "9H", "3H"}, card.Hearts, 1},
		{"non-trump cannot beat trump winner", []string{"KS", "2H", "AS"}, card.Hearts, 1},
		{"trump lead", []string{"5H", "AH", "KS"}, card.Hearts, 1},
		{"discards after lead", []string{"2C", "AD", "AH", "KS"}, card.Spades, 3},
		{"all discards, lead wins", []string{"2C", "AD", "AH", "KS"}, card.Clubs, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ResolveTrick(plays(t, c.plays...), c.trump))
		})
	}
	assert.Equal(t, -1, ResolveTrick(nil, card.Spades))
}

func TestCanPlayFollowSuit(t *testing.T) {
	hand := cards(t, "2S", "9S", "KH", "3D")

	// 首家任意出
	for _, c := range hand {
		assert.True(t, CanPlay(hand, nil, c))
	}

	spadeLead := plays(t, "AS")
	assert.True(t, CanPlay(hand, spadeLead, mustCard(t, "2S")))
	assert.False(t, CanPlay(hand, spadeLead, mustCard(t, "KH")))
	assert.False(t, CanPlay(hand, spadeLead, mustCard(t, "3D")))
	assert.ElementsMatch(t, cards(t, "2S", "9S"), LegalCards(hand, spadeLead))

	// 没有首攻花色时可以出任意牌
	clubLead := plays(t, "4C")
	for _, c := range hand {
		assert.True(t, CanPlay(hand, clubLead, c))
	}
	assert.Equal(t, hand, LegalCards(hand, clubLead))
}
