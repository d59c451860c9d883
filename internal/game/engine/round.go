package engine

import (
	"fmt"

	"Judgment/internal/game/card"
)

// Phase 一局内的阶段：bidding → playing → complete，单向
type Phase string

const (
	PhaseBidding  Phase = "bidding"
	PhasePlaying  Phase = "playing"
	PhaseComplete Phase = "complete"
)

// Round 单局状态，按座位下标存放（开局后座位固定）
type Round struct {
	CardsPerPlayer int
	Dealer         int
	Starter        int
	Trump          card.Suit
	Blind          bool
	Phase          Phase
	Turn           int

	hands   [][]card.Card
	bids    []Bid
	tricks  []int
	current []Play
	history []TrickRecord
}

// NewRound 用已发好的手牌建一局，庄家下一家先叫先出
func NewRound(dealer int, trump card.Suit, hands [][]card.Card) *Round {
	seats := len(hands)
	perPlayer := 0
	if seats > 0 {
		perPlayer = len(hands[0])
	}
	starter := (dealer + 1) % seats
	return &Round{
		CardsPerPlayer: perPlayer,
		Dealer:         dealer,
		Starter:        starter,
		Trump:          trump,
		Blind:          perPlayer == 1,
		Phase:          PhaseBidding,
		Turn:           starter,
		hands:          hands,
		bids:           make([]Bid, seats),
		tricks:         make([]int, seats),
	}
}

func (r *Round) Seats() int { return len(r.hands) }

// Hand 返回手牌副本
func (r *Round) Hand(seat int) []card.Card {
	return append([]card.Card(nil), r.hands[seat]...)
}

func (r *Round) Bids() []Bid { return append([]Bid(nil), r.bids...) }

func (r *Round) TricksWon() []int { return append([]int(nil), r.tricks...) }

func (r *Round) CurrentTrick() []Play { return append([]Play(nil), r.current...) }

func (r *Round) History() []TrickRecord {
	out := make([]TrickRecord, len(r.history))
	for i, t := range r.history {
		out[i] = TrickRecord{Winner: t.Winner, Plays: append([]Play(nil), t.Plays...)}
	}
	return out
}

// CardsPlayed 本局已经打出的牌数（含进行中的一墩）
func (r *Round) CardsPlayed() int {
	return len(r.history)*r.Seats() + len(r.current)
}

// CardsInHands 所有玩家手里剩余的牌数
func (r *Round) CardsInHands() int {
	n := 0
	for _, h := range r.hands {
		n += len(h)
	}
	return n
}

func (r *Round) bidTotal() int {
	total := 0
	for _, b := range r.bids {
		if b.Placed() {
			total += b.Value()
		}
	}
	return total
}

func (r *Round) allBid() bool {
	for _, b := range r.bids {
		if !b.Placed() {
			return false
		}
	}
	return true
}

// 下一个还没叫的座位（轮转）。轮次校验保证实际按座位顺序进行，这里的跳过只是兜底
func (r *Round) nextBidder() int {
	n := r.Seats()
	next := (r.Turn + 1) % n
	for r.bids[next].Placed() {
		next = (next + 1) % n
	}
	return next
}

// SubmitBid 叫墩。先全部校验，再修改状态
func (r *Round) SubmitBid(seat, value int) error {
	if r.Phase != PhaseBidding {
		return fmt.Errorf("%w: bidding has finished for this round", ErrWrongPhase)
	}
	if seat != r.Turn {
		return ErrNotYourTurn
	}
	if value < 0 || value > r.CardsPerPlayer {
		return fmt.Errorf("%w: bid outside allowed range 0..%d", ErrRule, r.CardsPerPlayer)
	}
	if seat == r.Dealer && r.bidTotal()+value == r.CardsPerPlayer {
		return fmt.Errorf("%w: dealer bid cannot make totals equal cards dealt", ErrRule)
	}

	r.bids[seat] = BidOf(value)
	if r.allBid() {
		r.Phase = PhasePlaying
		r.Turn = r.Starter
		return nil
	}
	r.Turn = r.nextBidder()
	return nil
}

// AllowedBids 该座位可叫的数；庄家去掉会让总数正好等于手牌数的那个值
func (r *Round) AllowedBids(seat int) []int {
	forbidden := -1
	if seat == r.Dealer {
		others := 0
		for s, b := range r.bids {
			if s != seat && b.Placed() {
				others += b.Value()
			}
		}
		forbidden = r.CardsPerPlayer - others
	}
	out := make([]int, 0, r.CardsPerPlayer+1)
	for v := 0; v <= r.CardsPerPlayer; v++ {
		if v != forbidden {
			out = append(out, v)
		}
	}
	return out
}

// AllowedCards 该座位当前可出的牌
func (r *Round) AllowedCards(seat int) []card.Card {
	return LegalCards(r.hands[seat], r.current)
}

// PlayCard 出牌；一墩凑齐时结算并返回该墩记录，否则返回 nil
func (r *Round) PlayCard(seat int, c card.Card) (*TrickRecord, error) {
	if r.Phase != PhasePlaying {
		if r.Phase == PhaseBidding {
			return nil, fmt.Errorf("%w: cannot play cards during bidding", ErrWrongPhase)
		}
		return nil, fmt.Errorf("%w: round is complete", ErrWrongPhase)
	}
	if seat != r.Turn {
		return nil, ErrNotYourTurn
	}
	hand := r.hands[seat]
	idx := card.IndexOf(hand, c)
	if idx < 0 {
		return nil, fmt.Errorf("%w: card %s not in hand", ErrRule, c.Code())
	}
	if !CanPlay(hand, r.current, c) {
		return nil, fmt.Errorf("%w: you must follow suit when possible", ErrRule)
	}

	r.hands[seat] = append(hand[:idx:idx], hand[idx+1:]...)
	r.current = append(r.current, Play{Seat: seat, Card: c})

	if len(r.current) < r.Seats() {
		r.Turn = (r.Turn + 1) % r.Seats()
		return nil, nil
	}
	rec := r.closeTrick()
	return &rec, nil
}

func (r *Round) closeTrick() TrickRecord {
	w := ResolveTrick(r.current, r.Trump)
	winner := r.current[w].Seat
	r.tricks[winner]++

	rec := TrickRecord{Winner: winner, Plays: r.current}
	r.history = append(r.history, rec)
	r.current = nil

	// 下一墩由赢家首攻，而不是下一个座位
	r.Turn = winner
	if r.CardsInHands() == 0 {
		r.Phase = PhaseComplete
	}
	return TrickRecord{Winner: winner, Plays: append([]Play(nil), rec.Plays...)}
}
