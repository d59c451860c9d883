package engine

// Standings 终局统计：最高分、最多叫中、两项兼得
type Standings struct {
	ScoreWinners []string `json:"score_winners"`
	GuessWinners []string `json:"guess_winners"`
	MegaWinners  []string `json:"mega_winners"`
}

// Tally 按座位顺序给出三组赢家 id
func Tally(players []*Player) Standings {
	st := Standings{
		ScoreWinners: []string{},
		GuessWinners: []string{},
		MegaWinners:  []string{},
	}
	if len(players) == 0 {
		return st
	}

	maxScore, maxGuess := players[0].TotalScore, players[0].CorrectBids
	for _, p := range players[1:] {
		if p.TotalScore > maxScore {
			maxScore = p.TotalScore
		}
		if p.CorrectBids > maxGuess {
			maxGuess = p.CorrectBids
		}
	}

	guess := make(map[string]bool)
	for _, p := range players {
		if p.CorrectBids == maxGuess {
			st.GuessWinners = append(st.GuessWinners, p.ID)
			guess[p.ID] = true
		}
	}
	for _, p := range players {
		if p.TotalScore != maxScore {
			continue
		}
		st.ScoreWinners = append(st.ScoreWinners, p.ID)
		if guess[p.ID] {
			st.MegaWinners = append(st.MegaWinners, p.ID)
		}
	}
	return st
}
