package card

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Suit 花色，顺序固定为 S, D, C, H（同时也是将牌轮换顺序）
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

// SuitCount 花色数量
const SuitCount = 4

var (
	suitCodes   = []string{"S", "D", "C", "H"}
	suitSymbols = []string{"♠", "♦", "♣", "♥"}
	suitNames   = []string{"Spades", "Diamonds", "Clubs", "Hearts"}
)

// Code 单字母花色代码
func (s Suit) Code() string {
	if s < 0 || int(s) >= len(suitCodes) {
		return "?"
	}
	return suitCodes[s]
}

func (s Suit) Symbol() string {
	if s < 0 || int(s) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) Name() string {
	if s < 0 || int(s) >= len(suitNames) {
		return "Unknown"
	}
	return suitNames[s]
}

// Next 下一个花色（循环）
func (s Suit) Next() Suit {
	return Suit((int(s) + 1) % SuitCount)
}

// Rank 点数 2-14（11=J, 12=Q, 13=K, 14=A）
type Rank int

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

const (
	MinRank Rank = 2
	MaxRank Rank = Ace
)

var faceRanks = map[Rank]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// 点数代码 "2".."10", "J".."A" -> Rank，只接受精确写法
var rankCodes = func() map[string]Rank {
	m := make(map[string]Rank, int(MaxRank-MinRank)+1)
	for r := MinRank; r <= MaxRank; r++ {
		m[r.String()] = r
	}
	return m
}()

func (r Rank) String() string {
	if s, ok := faceRanks[r]; ok {
		return s
	}
	return strconv.Itoa(int(r))
}

// Card 不可变的牌值
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String 用于展示，例如 "10♥"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Code 线上传输格式，例如 "AS"、"10H"
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.Code()
}

// Parse 解析 "AS" / "10h" / " qd " 这类代码
func Parse(code string) (Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", code)
	}
	rankPart, suitPart := code[:len(code)-1], code[len(code)-1:]

	suit := Suit(-1)
	for i, s := range suitCodes {
		if s == suitPart {
			suit = Suit(i)
			break
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("invalid suit in card %q", code)
	}

	rank, ok := rankCodes[rankPart]
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card %q", code)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// NewDeck 返回 52 张牌，花色优先、点数其次
func NewDeck() []Card {
	deck := make([]Card, 0, SuitCount*13)
	for s := Spades; s <= Hearts; s++ {
		for r := MinRank; r <= MaxRank; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// SortKey 仅用于手牌展示排序
func (c Card) SortKey() int {
	return int(c.Suit)*100 + int(c.Rank)
}

// Sort 按 (花色, 点数) 原地排序
func Sort(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].SortKey() < cards[j].SortKey()
	})
}

// Higher 只比较点数，不关心花色，调用方负责提供花色上下文
func Higher(a, b Card) bool {
	return a.Rank > b.Rank
}

// Contains 手牌中是否有该牌
func Contains(hand []Card, c Card) bool {
	return IndexOf(hand, c) >= 0
}

func IndexOf(hand []Card, c Card) int {
	for i, h := range hand {
		if h == c {
			return i
		}
	}
	return -1
}

// HasSuit 手牌中是否有指定花色
func HasSuit(hand []Card, s Suit) bool {
	for _, h := range hand {
		if h.Suit == s {
			return true
		}
	}
	return false
}
