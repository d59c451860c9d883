package engine

import (
	"errors"
	"fmt"
	"testing"

	"Judgment/internal/game/card"
	"Judgment/internal/game/dealer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayers(n int) []*Player {
	out := make([]*Player, n)
	for i := range out {
		out[i] = &Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)}
	}
	return out
}

// 每个回合打出第一张合法牌，直到本局结束
func playOutRound(t *testing.T, g *Game) PlayResult {
	t.Helper()
	r := g.Round()
	require.NotNil(t, r)
	require.Equal(t, PhasePlaying, r.Phase)
	for {
		seat := r.Turn
		legal := r.AllowedCards(seat)
		require.NotEmpty(t, legal)
		res, err := g.PlayCard(g.players[seat].ID, legal[0])
		require.NoError(t, err)
		if res.Completed != nil {
			return res
		}
		assert.Equal(t, r.CardsPerPlayer*r.Seats(), r.CardsInHands()+r.CardsPlayed())
	}
}

// 按座位顺序叫第一个合法值
func bidAll(t *testing.T, g *Game) {
	t.Helper()
	r := g.Round()
	for r.Phase == PhaseBidding {
		seat := r.Turn
		allowed := r.AllowedBids(seat)
		require.NoError(t, g.SubmitBid(g.players[seat].ID, allowed[0]))
	}
}

func TestNewGameValidation(t *testing.T) {
	_, err := NewGame(newPlayers(1), 4, dealer.NewDealer(1))
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewGame(newPlayers(7), 8, dealer.NewDealer(1))
	assert.True(t, errors.Is(err, ErrCapacity))

	g, err := NewGame(newPlayers(3), 8, dealer.NewDealer(1))
	require.NoError(t, err)
	assert.Equal(t, RoundSequence(8), g.Sequence())
	assert.Equal(t, 0, g.Dealer())
	assert.Equal(t, card.Spades, g.Trump())
	r := g.Round()
	require.NotNil(t, r)
	assert.Equal(t, 8, r.CardsPerPlayer)
	assert.Equal(t, 1, r.Starter)
	for seat := 0; seat < 3; seat++ {
		assert.Len(t, r.Hand(seat), 8)
	}
}

func TestFourPlayerFirstRoundScenario(t *testing.T) {
	players := newPlayers(4)
	g, err := NewGame(players, 4, dealer.NewDealer(2024))
	require.NoError(t, err)

	r := g.Round()
	assert.Equal(t, 4, r.CardsPerPlayer)
	assert.Equal(t, 1, r.Turn)

	// 叫牌顺序 1,2,3 然后庄家 0
	require.NoError(t, g.SubmitBid("p1", 1))
	require.NoError(t, g.SubmitBid("p2", 1))
	require.NoError(t, g.SubmitBid("p3", 1))
	assert.NotContains(t, r.AllowedBids(0), 1)
	assert.True(t, errors.Is(g.SubmitBid("p0", 1), ErrRule))
	require.NoError(t, g.SubmitBid("p0", 2))
	assert.Equal(t, PhasePlaying, r.Phase)

	_, err = g.PlayCard("p2", r.Hand(2)[0])
	assert.True(t, errors.Is(err, ErrNotYourTurn))
	assert.True(t, errors.Is(g.SubmitBid("p1", 1), ErrWrongPhase))

	res := playOutRound(t, g)
	require.NotNil(t, res.Completed)
	assert.False(t, res.GameOver)

	history := r.History()
	require.Len(t, history, 4, "one winner per trick")
	wins := make([]int, 4)
	for _, trick := range history {
		assert.Len(t, trick.Plays, 4)
		wins[trick.Winner]++
	}
	assert.Equal(t, wins, r.TricksWon())

	rec := res.Completed
	assert.Equal(t, []int{2, 1, 1, 1}, rec.Bids)
	for seat, p := range players {
		want, hit := Points(rec.Bids[seat], rec.TricksWon[seat])
		assert.Equal(t, want, rec.Points[seat])
		assert.Equal(t, hit, rec.Hits[seat])
		assert.Equal(t, want, p.TotalScore)
		if hit {
			assert.Equal(t, 1, p.CorrectBids)
		} else {
			assert.Equal(t, 0, p.CorrectBids)
		}
	}

	// 第二局：3 张，将牌轮到方块，庄家为上一局首家
	assert.Equal(t, 1, g.CurrentRound())
	next := g.Round()
	require.NotNil(t, next)
	assert.NotSame(t, r, next)
	assert.Equal(t, 3, next.CardsPerPlayer)
	assert.Equal(t, card.Diamonds, next.Trump)
	assert.Equal(t, 1, next.Dealer)
	assert.Equal(t, 2, next.Starter)
	assert.Equal(t, PhaseBidding, next.Phase)
	require.Len(t, g.Log(), 1)
}

func TestFullGameRunsToCompletion(t *testing.T) {
	players := newPlayers(3)
	g, err := NewGame(players, 4, dealer.NewDealer(7))
	require.NoError(t, err)

	seq := g.Sequence()
	for i, cardsThisRound := range seq {
		r := g.Round()
		require.NotNil(t, r, "round %d", i+1)
		assert.Equal(t, cardsThisRound, r.CardsPerPlayer)
		assert.Equal(t, cardsThisRound == 1, r.Blind)
		assert.Equal(t, card.Suit(i%card.SuitCount), r.Trump)
		assert.Equal(t, i%3, r.Dealer)

		bidAll(t, g)
		res := playOutRound(t, g)
		assert.Equal(t, i == len(seq)-1, res.GameOver)
	}

	assert.True(t, g.Finished())
	assert.Nil(t, g.Round())
	log := g.Log()
	require.Len(t, log, len(seq))

	totals := make([]int, 3)
	hits := make([]int, 3)
	for i, rec := range log {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, seq[i], rec.Cards)
		sum := 0
		for seat := range players {
			totals[seat] += rec.Points[seat]
			if rec.Hits[seat] {
				hits[seat]++
			}
			sum += rec.TricksWon[seat]
		}
		assert.Equal(t, rec.Cards, sum)
	}
	for seat, p := range players {
		assert.Equal(t, totals[seat], p.TotalScore)
		assert.Equal(t, hits[seat], p.CorrectBids)
	}

	assert.True(t, errors.Is(g.SubmitBid("p0", 0), ErrWrongPhase))
	_, err = g.PlayCard("p0", card.Card{Suit: card.Spades, Rank: card.Ace})
	assert.True(t, errors.Is(err, ErrWrongPhase))
}

func TestRoundLogIsNotAliased(t *testing.T) {
	g, err := NewGame(newPlayers(2), 4, dealer.NewDealer(3))
	require.NoError(t, err)
	bidAll(t, g)
	playOutRound(t, g)

	log := g.Log()
	log[0].Points[0] = 999
	assert.NotEqual(t, 999, g.Log()[0].Points[0])
}

func TestUnknownPlayerIsRejected(t *testing.T) {
	g, err := NewGame(newPlayers(2), 4, dealer.NewDealer(3))
	require.NoError(t, err)
	assert.True(t, errors.Is(g.SubmitBid("nobody", 1), ErrNotYourTurn))
	_, err = g.PlayCard("nobody", card.Card{Suit: card.Spades, Rank: 2})
	assert.True(t, errors.Is(err, ErrWrongPhase))
}
