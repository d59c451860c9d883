package engine

import "Judgment/internal/game/card"

// Play 一墩中的一次出牌
type Play struct {
	Seat int       `json:"seat"`
	Card card.Card `json:"card"`
}

// TrickRecord 已结算的一墩，写入后不再修改
type TrickRecord struct {
	Winner int    `json:"winner"`
	Plays  []Play `json:"plays"`
}

// CanPlay 跟牌规则：首家任意出；有首攻花色必须跟；没有则任意（不强制将吃）
func CanPlay(hand []card.Card, trick []Play, c card.Card) bool {
	if len(trick) == 0 {
		return true
	}
	lead := trick[0].Card.Suit
	if c.Suit == lead {
		return true
	}
	return !card.HasSuit(hand, lead)
}

// LegalCards 返回当前可出的牌
func LegalCards(hand []card.Card, trick []Play) []card.Card {
	out := make([]card.Card, 0, len(hand))
	for _, c := range hand {
		if CanPlay(hand, trick, c) {
			out = append(out, c)
		}
	}
	return out
}

// ResolveTrick 返回赢家在 plays 中的下标。
// 将牌压一切；已有将牌领先时非将牌不可能反超；否则只有首攻花色的更大点数能赢，垫牌永远不赢。
func ResolveTrick(plays []Play, trump card.Suit) int {
	if len(plays) == 0 {
		return -1
	}
	lead := plays[0].Card.Suit
	win := 0
	for i := 1; i < len(plays); i++ {
		c, best := plays[i].Card, plays[win].Card
		switch {
		case c.Suit == trump:
			if best.Suit != trump || card.Higher(c, best) {
				win = i
			}
		case best.Suit == trump:
			continue
		case c.Suit == lead && card.Higher(c, best):
			win = i
		}
	}
	return win
}
