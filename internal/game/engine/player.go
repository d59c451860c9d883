package engine

// Player 房间内玩家，分数只在一局（round）结束时变化
type Player struct {
	ID          string `json:"player_id"`
	Name        string `json:"name"`
	TotalScore  int    `json:"total_score"`
	CorrectBids int    `json:"correct_bids"`
}

// Bid 区分 “还没叫” 与 “叫 0”
type Bid struct {
	value  int
	placed bool
}

func BidOf(v int) Bid { return Bid{value: v, placed: true} }

func (b Bid) Placed() bool { return b.placed }

func (b Bid) Value() int { return b.value }

// Ptr 给视图用，未叫返回 nil
func (b Bid) Ptr() *int {
	if !b.placed {
		return nil
	}
	v := b.value
	return &v
}
