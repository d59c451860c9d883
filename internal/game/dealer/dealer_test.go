package dealer

import (
	"testing"
	"time"

	"Judgment/internal/game/card"
)

// 工具：检查是否有重复牌
func hasDuplicates(cards []card.Card) bool {
	seen := make(map[card.Card]bool)
	for _, c := range cards {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

// ✅ 测试牌组初始化
func TestNewDeck(t *testing.T) {
	d := NewDealer(time.Now().UnixNano())
	d.NewDeck()

	if len(d.deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(d.deck))
	}
	if hasDuplicates(d.deck) {
		t.Fatalf("deck should not contain duplicates")
	}

	suits := make(map[card.Suit]bool)
	ranks := make(map[card.Rank]bool)
	for _, c := range d.deck {
		suits[c.Suit] = true
		ranks[c.Rank] = true
	}
	if len(suits) != 4 {
		t.Fatalf("expected 4 suits, got %d", len(suits))
	}
	if len(ranks) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(ranks))
	}
}

// ✅ 测试洗牌效果（相同种子相同序列）
func TestShuffleChangesOrder(t *testing.T) {
	d1 := NewDealer(42)
	d1.NewDeck()
	d2 := NewDealer(42)
	d2.NewDeck()

	for i := range d1.deck {
		if d1.deck[i] != d2.deck[i] {
			t.Fatalf("expected identical decks for same seed")
		}
	}

	d3 := NewDealer(99)
	d3.NewDeck()
	diff := false
	for i := range d1.deck {
		if d1.deck[i] != d3.deck[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Fatalf("expected deck with different seed to differ")
	}
}

// ✅ 发牌是整副牌的一个无重复划分
func TestDealPartition(t *testing.T) {
	d := NewDealer(1)
	hands, err := d.Deal(6, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hands) != 6 {
		t.Fatalf("expected 6 hands, got %d", len(hands))
	}

	all := []card.Card{}
	for seat, h := range hands {
		if len(h) != 8 {
			t.Fatalf("seat %d should have 8 cards, got %d", seat, len(h))
		}
		for i := 1; i < len(h); i++ {
			if h[i-1].SortKey() > h[i].SortKey() {
				t.Fatalf("seat %d hand not sorted: %v", seat, h)
			}
		}
		all = append(all, h...)
	}
	if hasDuplicates(all) {
		t.Fatalf("dealt cards contain duplicates")
	}
	if len(all)+d.Remaining() != 52 {
		t.Fatalf("dealt %d + remaining %d should be 52", len(all), d.Remaining())
	}
	all = append(all, d.deck...)
	if hasDuplicates(all) {
		t.Fatalf("dealt cards overlap the remaining deck")
	}
}

// ✅ 每次发牌都重新洗一副新牌
func TestDealUsesFreshDeck(t *testing.T) {
	d := NewDealer(7)
	for i := 0; i < 10; i++ {
		if _, err := d.Deal(3, 16); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Remaining() != 52-48 {
			t.Fatalf("expected 4 remaining, got %d", d.Remaining())
		}
	}
}

func TestDealRejectsOversizedDeal(t *testing.T) {
	d := NewDealer(3)
	if _, err := d.Deal(7, 8); err == nil {
		t.Fatalf("expected error dealing 56 cards")
	}
	if _, err := d.Deal(0, 4); err == nil {
		t.Fatalf("expected error dealing to zero players")
	}
}

// ✅ 牌堆抽空后报错，不会悄悄换一副新牌
func TestDrawEmptyDeckFails(t *testing.T) {
	d := NewDealer(3)
	d.NewDeck()
	for i := 0; i < 52; i++ {
		if _, err := d.draw(); err != nil {
			t.Fatalf("draw %d: unexpected error: %v", i, err)
		}
	}
	if _, err := d.draw(); err == nil {
		t.Fatalf("expected error drawing from an empty deck")
	}
	if d.Remaining() != 0 {
		t.Fatalf("empty deck must stay empty, got %d", d.Remaining())
	}
}
