package dealer

import (
	"fmt"
	"math/rand"

	"Judgment/internal/game/card"
)

// Dealer 只负责洗牌与发牌（无规则判断）
// 非并发安全，调用方（GameManager）持锁使用
type Dealer struct {
	deck []card.Card
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		deck: make([]card.Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDeck 初始化一副牌并洗牌
func (d *Dealer) NewDeck() {
	d.deck = card.NewDeck()
	d.shuffle()
}

// Fisher-Yates，均匀随机排列
func (d *Dealer) shuffle() {
	d.rnd.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// Deal 洗一副新牌，给 players 个座位每人发 perPlayer 张，手牌按花色/点数排序
func (d *Dealer) Deal(players, perPlayer int) ([][]card.Card, error) {
	if players <= 0 || perPlayer <= 0 {
		return nil, fmt.Errorf("invalid deal %d x %d", players, perPlayer)
	}
	if players*perPlayer > 52 {
		return nil, fmt.Errorf("cannot deal %d cards to %d players from one deck", perPlayer, players)
	}
	d.NewDeck()

	hands := make([][]card.Card, players)
	for seat := range hands {
		hand := make([]card.Card, 0, perPlayer)
		for i := 0; i < perPlayer; i++ {
			c, err := d.draw()
			if err != nil {
				return nil, err
			}
			hand = append(hand, c)
		}
		card.Sort(hand)
		hands[seat] = hand
	}
	return hands, nil
}

// Remaining 牌堆剩余张数
func (d *Dealer) Remaining() int {
	return len(d.deck)
}

func (d *Dealer) draw() (card.Card, error) {
	if len(d.deck) == 0 {
		return card.Card{}, fmt.Errorf("deck is empty")
	}
	c := d.deck[len(d.deck)-1]
	d.deck = d.deck[:len(d.deck)-1]
	return c, nil
}
