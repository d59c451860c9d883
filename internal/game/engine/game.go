package engine

import (
	"fmt"
	"time"

	"Judgment/internal/game/card"
	"Judgment/internal/game/dealer"
)

// RoundRecord 一局结束后的结算记录，只追加不修改
type RoundRecord struct {
	Index     int       `json:"index"`
	Cards     int       `json:"cards"`
	Dealer    int       `json:"dealer"`
	Trump     card.Suit `json:"trump"`
	Bids      []int     `json:"bids"`
	TricksWon []int     `json:"tricks_won"`
	Points    []int     `json:"points"`
	Hits      []bool    `json:"hits"`
}

func (rec RoundRecord) clone() RoundRecord {
	rec.Bids = append([]int(nil), rec.Bids...)
	rec.TricksWon = append([]int(nil), rec.TricksWon...)
	rec.Points = append([]int(nil), rec.Points...)
	rec.Hits = append([]bool(nil), rec.Hits...)
	return rec
}

// PlayResult 一次出牌引起的后续事件
type PlayResult struct {
	Trick     *TrickRecord
	Completed *RoundRecord
	GameOver  bool
}

// Game 驱动整场比赛的多局推进：发牌、庄家/将牌轮换、计分
type Game struct {
	StartedAt time.Time

	players  []*Player
	sequence []int
	dealer   int
	trump    card.Suit
	current  int
	round    *Round
	finished bool
	log      []RoundRecord
	deal     *dealer.Dealer
}

// NewGame 锁定座位顺序并立即发第一局
func NewGame(players []*Player, base int, d *dealer.Dealer) (*Game, error) {
	if len(players) < MinPlayers {
		return nil, fmt.Errorf("%w: at least two players are required", ErrInvalidInput)
	}
	if err := CheckCapacity(len(players), base); err != nil {
		return nil, err
	}
	g := &Game{
		StartedAt: time.Now().UTC(),
		players:   append([]*Player(nil), players...),
		sequence:  RoundSequence(base),
		dealer:    0,
		trump:     card.Spades,
		deal:      d,
	}
	r, err := g.newRound()
	if err != nil {
		return nil, err
	}
	g.round = r
	return g, nil
}

func (g *Game) newRound() (*Round, error) {
	hands, err := g.deal.Deal(len(g.players), g.sequence[g.current])
	if err != nil {
		return nil, fmt.Errorf("deal round %d: %w", g.current+1, err)
	}
	return NewRound(g.dealer, g.trump, hands), nil
}

func (g *Game) Players() []*Player { return append([]*Player(nil), g.players...) }

func (g *Game) Sequence() []int { return append([]int(nil), g.sequence...) }

// CurrentRound 0 起算
func (g *Game) CurrentRound() int { return g.current }

func (g *Game) Dealer() int { return g.dealer }

func (g *Game) Trump() card.Suit { return g.trump }

// Round 当前局；比赛结束后为 nil
func (g *Game) Round() *Round { return g.round }

func (g *Game) Finished() bool { return g.finished }

func (g *Game) Log() []RoundRecord {
	out := make([]RoundRecord, len(g.log))
	for i, rec := range g.log {
		out[i] = rec.clone()
	}
	return out
}

// SeatOf 玩家 id -> 座位
func (g *Game) SeatOf(playerID string) (int, bool) {
	for i, p := range g.players {
		if p.ID == playerID {
			return i, true
		}
	}
	return -1, false
}

func (g *Game) activeRound() (*Round, error) {
	if g.finished || g.round == nil {
		return nil, fmt.Errorf("%w: game is finished", ErrWrongPhase)
	}
	return g.round, nil
}

// SubmitBid 不在座位上的 id 按 “不是你的回合” 处理
func (g *Game) SubmitBid(playerID string, value int) error {
	r, err := g.activeRound()
	if err != nil {
		return err
	}
	if r.Phase != PhaseBidding {
		return fmt.Errorf("%w: bidding has finished for this round", ErrWrongPhase)
	}
	seat, ok := g.SeatOf(playerID)
	if !ok {
		return ErrNotYourTurn
	}
	return r.SubmitBid(seat, value)
}

// PlayCard 出牌；当一局打完时结算并推进到下一局（或结束比赛）
func (g *Game) PlayCard(playerID string, c card.Card) (PlayResult, error) {
	r, err := g.activeRound()
	if err != nil {
		return PlayResult{}, err
	}
	if r.Phase == PhaseBidding {
		return PlayResult{}, fmt.Errorf("%w: cannot play cards during bidding", ErrWrongPhase)
	}
	seat, ok := g.SeatOf(playerID)
	if !ok {
		return PlayResult{}, ErrNotYourTurn
	}
	trick, err := r.PlayCard(seat, c)
	if err != nil {
		return PlayResult{}, err
	}

	res := PlayResult{Trick: trick}
	if r.Phase != PhaseComplete {
		return res, nil
	}
	rec, err := g.completeRound(r)
	if err != nil {
		return res, err
	}
	res.Completed = &rec
	res.GameOver = g.finished
	return res, nil
}

func (g *Game) completeRound(r *Round) (RoundRecord, error) {
	n := len(g.players)
	rec := RoundRecord{
		Index:     g.current,
		Cards:     r.CardsPerPlayer,
		Dealer:    r.Dealer,
		Trump:     r.Trump,
		Bids:      make([]int, n),
		TricksWon: r.TricksWon(),
		Points:    make([]int, n),
		Hits:      make([]bool, n),
	}
	for seat, p := range g.players {
		bid := r.bids[seat].Value()
		pts, hit := Points(bid, r.tricks[seat])
		rec.Bids[seat] = bid
		rec.Points[seat] = pts
		rec.Hits[seat] = hit
		if hit {
			p.CorrectBids++
			p.TotalScore += pts
		}
	}
	g.log = append(g.log, rec)

	// 庄家轮到本局首家，将牌按 S→D→C→H 轮换
	g.dealer = r.Starter
	g.trump = g.trump.Next()
	g.current++

	if g.current >= len(g.sequence) {
		g.finished = true
		g.round = nil
		return rec.clone(), nil
	}
	next, err := g.newRound()
	if err != nil {
		return rec.clone(), err
	}
	g.round = next
	return rec.clone(), nil
}
