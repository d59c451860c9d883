package scoreboard

import "time"

// PlayerResult 终局时每个玩家的数据
type PlayerResult struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	TotalScore  int    `json:"total_score"`
	CorrectBids int    `json:"correct_bids"`
}

// Entry 一场完整比赛的结算记录
type Entry struct {
	RoomCode     string         `json:"room_code"`
	CompletedAt  time.Time      `json:"completed_at"`
	BaseCards    int            `json:"base_cards"`
	Players      []PlayerResult `json:"players"`
	ScoreWinners []string       `json:"score_winners"`
	GuessWinners []string       `json:"guess_winners"`
	MegaWinners  []string       `json:"mega_winners"`
}
