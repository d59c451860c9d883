package manager

import (
	"context"
	"time"

	"Judgment/internal/game/card"
	"Judgment/internal/game/engine"
	"Judgment/internal/scoreboard"
	"Judgment/internal/utils"
)

// 盲叫阶段对自己手牌的占位
const hiddenCard = "??"

type PlayerView struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	TotalScore  int    `json:"total_score"`
	CorrectBids int    `json:"correct_bids"`
	IsHost      bool   `json:"is_host"`
	IsYou       bool   `json:"is_you"`
	Seat        int    `json:"seat"`
}

type RoomView struct {
	Code       string       `json:"code"`
	Status     RoomStatus   `json:"status"`
	Players    []PlayerView `json:"players"`
	HostID     string       `json:"host_id"`
	CreatedAt  time.Time    `json:"created_at"`
	BaseCards  int          `json:"base_cards"`
	MaxPlayers int          `json:"max_players"`
}

type CardView struct {
	Card    string `json:"card"`
	Display string `json:"display"`
}

type PlayView struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Card       string `json:"card"`
	Display    string `json:"display"`
}

// TrickView 本局已结束的一墩
type TrickView struct {
	WinnerID   string     `json:"winner_id"`
	WinnerName string     `json:"winner_name"`
	Cards      []PlayView `json:"cards"`
}

type TurnView struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

type TrumpView struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RoundSummary 每局一条：pending / 当前阶段 / complete
type RoundSummary struct {
	Round     int               `json:"round"`
	Cards     int               `json:"cards"`
	Status    string            `json:"status"`
	Bids      map[string]*int   `json:"bids,omitempty"`
	TricksWon map[string]int    `json:"tricks_won,omitempty"`
	Points    map[string]int    `json:"points,omitempty"`
	Results   map[string]string `json:"results,omitempty"`
	IsCurrent bool              `json:"is_current,omitempty"`
}

type GameView struct {
	Started        bool            `json:"started"`
	Finished       bool            `json:"finished"`
	CurrentRound   int             `json:"current_round"`
	TotalRounds    int             `json:"total_rounds"`
	CardsPerPlayer *int            `json:"cards_per_player"`
	DealerID       *string         `json:"dealer_id"`
	StarterID      *string         `json:"starter_id"`
	Phase          string          `json:"phase"`
	Trump          TrumpView       `json:"trump"`
	Bids           map[string]*int `json:"bids"`
	TricksWon      map[string]int  `json:"tricks_won"`
	CurrentTrick   []PlayView      `json:"current_trick"`
	TrickHistory   []TrickView     `json:"trick_history"`
	BlindBidding   bool            `json:"blind_bidding"`
	Hand           []CardView      `json:"hand"`
	CurrentTurn    *TurnView       `json:"current_turn,omitempty"`
	AllowedBids    []int           `json:"allowed_bids,omitempty"`
	AllowedCards   []CardView      `json:"allowed_cards,omitempty"`
	Rounds         []RoundSummary  `json:"rounds"`
}

// StateView 某个房间（从某个玩家视角）的完整快照
type StateView struct {
	Room       RoomView           `json:"room"`
	Scoreboard []scoreboard.Entry `json:"scoreboard"`
	Game       *GameView          `json:"game,omitempty"`
	LastResult *scoreboard.Entry  `json:"last_result,omitempty"`
}

func cardViews(cards []card.Card) []CardView {
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = CardView{Card: c.Code(), Display: c.String()}
	}
	return out
}

// handView 盲叫阶段只给占位
func handView(r *engine.Round, seat int) []CardView {
	if r.Blind && r.Phase == engine.PhaseBidding {
		return []CardView{{Card: hiddenCard, Display: hiddenCard}}
	}
	return cardViews(r.Hand(seat))
}

func playViews(room *Room, players []*engine.Player, plays []engine.Play) []PlayView {
	out := make([]PlayView, len(plays))
	for i, play := range plays {
		id := players[play.Seat].ID
		out[i] = PlayView{
			PlayerID:   id,
			PlayerName: room.playerName(id),
			Card:       play.Card.Code(),
			Display:    play.Card.String(),
		}
	}
	return out
}

// GetState 房间存在时不会失败；playerID 可为空（旁观视角，不含手牌）
func (m *GameManager) GetState(ctx context.Context, roomCode, playerID string) (*StateView, error) {
	m.mu.Lock()
	room, err := m.roomOrErr(roomCode)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	view := &StateView{Room: roomView(room, playerID)}
	if room.Game != nil {
		view.Game = gameView(room, room.Game, playerID)
	}
	if room.LastResult != nil {
		res := *room.LastResult
		view.LastResult = &res
	}
	m.mu.Unlock()

	// 计分板读取不占用全局锁
	entries, err := m.store.List(ctx)
	if err != nil {
		utils.Log.Error("scoreboard read failed", "err", err)
		entries = []scoreboard.Entry{}
	}
	view.Scoreboard = entries
	return view, nil
}

func roomView(room *Room, playerID string) RoomView {
	players := make([]PlayerView, len(room.Players))
	for i, p := range room.Players {
		players[i] = PlayerView{
			PlayerID:    p.ID,
			Name:        p.Name,
			TotalScore:  p.TotalScore,
			CorrectBids: p.CorrectBids,
			IsHost:      p.ID == room.HostID,
			IsYou:       playerID != "" && p.ID == playerID,
			Seat:        i,
		}
	}
	maxPlayers, _ := engine.MaxPlayers(room.BaseCards)
	return RoomView{
		Code:       room.Code,
		Status:     room.Status,
		Players:    players,
		HostID:     room.HostID,
		CreatedAt:  room.CreatedAt.Truncate(time.Second),
		BaseCards:  room.BaseCards,
		MaxPlayers: maxPlayers,
	}
}

func gameView(room *Room, g *engine.Game, playerID string) *GameView {
	players := g.Players()
	r := g.Round()
	sequence := g.Sequence()

	current := g.CurrentRound() + 1
	if current > len(sequence) {
		current = len(sequence)
	}
	trump := g.Trump()
	if r != nil {
		trump = r.Trump
	}
	v := &GameView{
		Started:      true,
		Finished:     g.Finished(),
		CurrentRound: current,
		TotalRounds:  len(sequence),
		Phase:        "waiting",
		Trump:        TrumpView{Code: trump.Code(), Name: trump.Name(), Symbol: trump.Symbol()},
		Bids:         map[string]*int{},
		TricksWon:    map[string]int{},
		CurrentTrick: []PlayView{},
		TrickHistory: []TrickView{},
	}

	if r != nil {
		cpp := r.CardsPerPlayer
		dealerID, starterID := players[r.Dealer].ID, players[r.Starter].ID
		v.CardsPerPlayer = &cpp
		v.DealerID = &dealerID
		v.StarterID = &starterID
		v.Phase = string(r.Phase)
		v.BlindBidding = r.Blind

		bids, tricks := r.Bids(), r.TricksWon()
		for seat, p := range players {
			v.Bids[p.ID] = bids[seat].Ptr()
			v.TricksWon[p.ID] = tricks[seat]
		}
		v.CurrentTrick = playViews(room, players, r.CurrentTrick())
		for _, t := range r.History() {
			id := players[t.Winner].ID
			v.TrickHistory = append(v.TrickHistory, TrickView{
				WinnerID:   id,
				WinnerName: room.playerName(id),
				Cards:      playViews(room, players, t.Plays),
			})
		}

		seat, seated := g.SeatOf(playerID)
		if seated {
			v.Hand = handView(r, seat)
		}

		turnID := players[r.Turn].ID
		v.CurrentTurn = &TurnView{PlayerID: turnID, PlayerName: room.playerName(turnID)}
		if seated && seat == r.Turn {
			switch r.Phase {
			case engine.PhaseBidding:
				v.AllowedBids = r.AllowedBids(seat)
			case engine.PhasePlaying:
				v.AllowedCards = cardViews(r.AllowedCards(seat))
			}
		}
	}

	v.Rounds = roundSummaries(g, players, sequence, r)
	return v
}

func roundSummaries(g *engine.Game, players []*engine.Player, sequence []int, r *engine.Round) []RoundSummary {
	log := g.Log()
	out := make([]RoundSummary, len(sequence))
	for idx, cards := range sequence {
		entry := RoundSummary{Round: idx + 1, Cards: cards, Status: "pending"}
		switch {
		case idx < len(log):
			rec := log[idx]
			entry.Status = string(engine.PhaseComplete)
			entry.Bids = map[string]*int{}
			entry.TricksWon = map[string]int{}
			entry.Points = map[string]int{}
			entry.Results = map[string]string{}
			for seat, p := range players {
				bid := rec.Bids[seat]
				entry.Bids[p.ID] = &bid
				entry.TricksWon[p.ID] = rec.TricksWon[seat]
				entry.Points[p.ID] = rec.Points[seat]
				if rec.Hits[seat] {
					entry.Results[p.ID] = "hit"
				} else {
					entry.Results[p.ID] = "miss"
				}
			}
		case r != nil && !g.Finished() && idx == g.CurrentRound():
			entry.Status = string(r.Phase)
			entry.IsCurrent = true
			entry.Bids = map[string]*int{}
			entry.TricksWon = map[string]int{}
			entry.Points = map[string]int{}
			bids, tricks := r.Bids(), r.TricksWon()
			for seat, p := range players {
				entry.Bids[p.ID] = bids[seat].Ptr()
				entry.TricksWon[p.ID] = tricks[seat]
			}
		}
		out[idx] = entry
	}
	return out
}
