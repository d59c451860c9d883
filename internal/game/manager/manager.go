package manager

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"Judgment/internal/game/card"
	"Judgment/internal/game/dealer"
	"Judgment/internal/game/engine"
	"Judgment/internal/scoreboard"
	"Judgment/internal/utils"
	"Judgment/internal/websocket"

	"github.com/google/uuid"
)

// Notifier 房间状态变化时推送（websocket.Hub 实现了它）
type Notifier interface {
	BroadcastToPlayers(ids []string, msg websocket.OutgoingMessage)
	SendToPlayer(id string, msg websocket.OutgoingMessage)
}

// handUpdate 只发给手牌主人的一条消息
type handUpdate struct {
	playerID string
	msg      websocket.OutgoingMessage
}

// JoinInfo 建房/入房返回
type JoinInfo struct {
	RoomCode   string `json:"room_code"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	BaseCards  int    `json:"base_cards"`
	MaxPlayers int    `json:"max_players"`
}

// GameManager 管理所有房间；一把全局锁串行化所有读写，
// 每个操作先校验再修改，被拒绝的操作不改变任何状态
type GameManager struct {
	mu    sync.Mutex
	rooms map[string]*Room // room code → room

	store scoreboard.Store
	hub   Notifier

	rnd   *rand.Rand
	newID func() string
	now   func() time.Time
}

type Option func(*GameManager)

func WithNotifier(n Notifier) Option {
	return func(m *GameManager) { m.hub = n }
}

// WithSeed 固定房间码和发牌的随机序列（测试用）
func WithSeed(seed int64) Option {
	return func(m *GameManager) { m.rnd = rand.New(rand.NewSource(seed)) }
}

func WithClock(now func() time.Time) Option {
	return func(m *GameManager) { m.now = now }
}

func NewGameManager(store scoreboard.Store, opts ...Option) *GameManager {
	m := &GameManager{
		rooms: make(map[string]*Room),
		store: store,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (m *GameManager) roomOrErr(code string) (*Room, error) {
	room, ok := m.rooms[normalizeCode(code)]
	if !ok {
		return nil, engine.ErrRoomNotFound
	}
	return room, nil
}

// CreateRoom 建房，建房者为房主和唯一玩家
func (m *GameManager) CreateRoom(ctx context.Context, hostName string, baseCards int) (JoinInfo, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return JoinInfo{}, fmt.Errorf("%w: host name is required", engine.ErrInvalidInput)
	}
	maxPlayers, err := engine.MaxPlayers(baseCards)
	if err != nil {
		return JoinInfo{}, err
	}

	m.mu.Lock()
	code := m.generateRoomCode()
	id := m.generatePlayerID()
	room := &Room{
		Code:      code,
		CreatedAt: m.now().UTC(),
		HostID:    id,
		Players:   []*engine.Player{{ID: id, Name: hostName}},
		Status:    RoomWaiting,
		BaseCards: baseCards,
	}
	m.rooms[code] = room
	host := room.playerLog(id)
	m.mu.Unlock()

	utils.Log.Info("room created", "room", code, "host", host, "base", baseCards)
	return JoinInfo{
		RoomCode:   code,
		PlayerID:   id,
		PlayerName: hostName,
		BaseCards:  baseCards,
		MaxPlayers: maxPlayers,
	}, nil
}

// JoinRoom 只能加入 waiting 状态且未满员的房间
func (m *GameManager) JoinRoom(ctx context.Context, roomCode, playerName string) (JoinInfo, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return JoinInfo{}, fmt.Errorf("%w: player name is required", engine.ErrInvalidInput)
	}

	m.mu.Lock()
	room, err := m.roomOrErr(roomCode)
	if err != nil {
		m.mu.Unlock()
		return JoinInfo{}, err
	}
	if room.Status != RoomWaiting {
		m.mu.Unlock()
		return JoinInfo{}, fmt.Errorf("%w: game already started", engine.ErrRoomStatus)
	}
	maxPlayers, err := engine.MaxPlayers(room.BaseCards)
	if err != nil {
		m.mu.Unlock()
		return JoinInfo{}, err
	}
	if err := engine.CheckCapacity(len(room.Players)+1, room.BaseCards); err != nil {
		m.mu.Unlock()
		return JoinInfo{}, err
	}

	id := m.generatePlayerID()
	room.Players = append(room.Players, &engine.Player{ID: id, Name: playerName})
	total := len(room.Players)
	ids := room.playerIDs()
	m.mu.Unlock()

	utils.Log.Info("player joined", "room", room.Code, "player", playerName, "id", id, "players", total)
	m.notify(ids, room.Code, RoomWaiting)
	return JoinInfo{
		RoomCode:   room.Code,
		PlayerID:   id,
		PlayerName: playerName,
		BaseCards:  room.BaseCards,
		MaxPlayers: maxPlayers,
	}, nil
}

// StartGame 只有房主能开局，至少两人
func (m *GameManager) StartGame(ctx context.Context, roomCode, playerID string) error {
	m.mu.Lock()
	room, err := m.roomOrErr(roomCode)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if room.HostID != playerID {
		m.mu.Unlock()
		return engine.ErrNotHost
	}
	if len(room.Players) < engine.MinPlayers {
		m.mu.Unlock()
		return fmt.Errorf("%w: at least two players are required", engine.ErrInvalidInput)
	}
	if room.Status != RoomWaiting {
		m.mu.Unlock()
		return fmt.Errorf("%w: game already started", engine.ErrRoomStatus)
	}
	if err := engine.CheckCapacity(len(room.Players), room.BaseCards); err != nil {
		m.mu.Unlock()
		return err
	}

	game, err := engine.NewGame(room.Players, room.BaseCards, dealer.NewDealer(m.rnd.Int63()))
	if err != nil {
		m.mu.Unlock()
		return err
	}
	room.Game = game
	room.Status = RoomPlaying
	ids := room.playerIDs()
	hands := handUpdates(room.Code, game)
	m.mu.Unlock()

	utils.Log.Info("game started", "room", room.Code, "players", len(ids),
		"base", room.BaseCards, "sequence", game.Sequence())
	m.notify(ids, room.Code, RoomPlaying)
	m.sendHands(hands)
	return nil
}

func (m *GameManager) gameOrErr(room *Room) (*engine.Game, error) {
	if room.Game == nil {
		return nil, fmt.Errorf("%w: game not started", engine.ErrRoomStatus)
	}
	return room.Game, nil
}

// SubmitBid 叫墩
func (m *GameManager) SubmitBid(ctx context.Context, roomCode, playerID string, bid int) error {
	m.mu.Lock()
	room, err := m.roomOrErr(roomCode)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	game, err := m.gameOrErr(room)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if err := game.SubmitBid(playerID, bid); err != nil {
		m.mu.Unlock()
		utils.Log.Debug("bid rejected", "room", room.Code, "player", room.playerLog(playerID), "bid", bid, "err", err)
		return err
	}

	r := game.Round()
	next := game.Players()[r.Turn].ID
	phase := r.Phase
	round := game.CurrentRound() + 1
	ids := room.playerIDs()
	who, nextWho := room.playerLog(playerID), room.playerLog(next)
	var hands []handUpdate
	if r.Blind && phase == engine.PhasePlaying {
		// 盲叫结束，亮出手牌
		hands = handUpdates(room.Code, game)
	}
	m.mu.Unlock()

	utils.Log.Info("bid accepted", "room", room.Code, "round", round, "player", who,
		"bid", bid, "phase", phase, "next", nextWho)
	m.notify(ids, room.Code, RoomPlaying)
	m.sendHands(hands)
	return nil
}

// PlayCard 出牌；card 为 "AS"、"10H" 这类代码
func (m *GameManager) PlayCard(ctx context.Context, roomCode, playerID, cardCode string) error {
	m.mu.Lock()
	room, err := m.roomOrErr(roomCode)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	game, err := m.gameOrErr(room)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	c, err := card.Parse(cardCode)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: %v", engine.ErrRule, err)
	}
	round := game.CurrentRound() + 1
	res, err := game.PlayCard(playerID, c)
	if err != nil {
		m.mu.Unlock()
		utils.Log.Debug("play rejected", "room", room.Code, "player", room.playerLog(playerID), "card", c.Code(), "err", err)
		return err
	}

	var winner string
	if res.Trick != nil {
		winner = room.playerLog(game.Players()[res.Trick.Winner].ID)
	}
	var entry *scoreboard.Entry
	if res.GameOver {
		room.Status = RoomFinished
		e := m.finalEntry(room)
		room.LastResult = &e
		entry = &e
	}
	status := room.Status
	ids := room.playerIDs()
	scores := make(map[string]int, len(room.Players))
	for _, p := range room.Players {
		scores[room.playerLog(p.ID)] = p.TotalScore
	}
	who := room.playerLog(playerID)
	var hands []handUpdate
	if res.Completed != nil && !res.GameOver {
		hands = handUpdates(room.Code, game)
	}
	m.mu.Unlock()

	utils.Log.Debug("card played", "room", room.Code, "round", round, "player", who, "card", c.String())
	if res.Trick != nil {
		utils.Log.Info("trick complete", "room", room.Code, "round", round, "winner", winner)
	}
	if res.Completed != nil {
		utils.Log.Info("round complete", "room", room.Code, "round", round, "scores", scores)
	}
	if entry != nil {
		// 计分板有自己的锁，不在全局锁内写
		if err := m.store.Append(ctx, *entry); err != nil {
			utils.Log.Error("scoreboard append failed", "room", room.Code, "err", err)
		}
		utils.Log.Info("game finished", "room", room.Code,
			"score_winners", entry.ScoreWinners, "guess_winners", entry.GuessWinners, "mega_winners", entry.MegaWinners)
		m.notifyEvent(ids, websocket.EventGameOver, room.Code, status)
	}
	m.notify(ids, room.Code, status)
	m.sendHands(hands)
	return nil
}

// handUpdates 新一局发牌或盲叫亮牌时，每个玩家各自的手牌；调用方持锁
func handUpdates(code string, g *engine.Game) []handUpdate {
	r := g.Round()
	if r == nil {
		return nil
	}
	players := g.Players()
	out := make([]handUpdate, len(players))
	for seat, p := range players {
		out[seat] = handUpdate{
			playerID: p.ID,
			msg: websocket.OutgoingMessage{
				Event: websocket.EventHandUpdated,
				Data: map[string]any{
					"room_code":        code,
					"round":            g.CurrentRound() + 1,
					"cards_per_player": r.CardsPerPlayer,
					"blind_bidding":    r.Blind && r.Phase == engine.PhaseBidding,
					"hand":             handView(r, seat),
				},
			},
		}
	}
	return out
}

func (m *GameManager) sendHands(hands []handUpdate) {
	if m.hub == nil {
		return
	}
	for _, h := range hands {
		m.hub.SendToPlayer(h.playerID, h.msg)
	}
}

// 调用方持锁
func (m *GameManager) finalEntry(room *Room) scoreboard.Entry {
	st := engine.Tally(room.Players)
	players := make([]scoreboard.PlayerResult, len(room.Players))
	for i, p := range room.Players {
		players[i] = scoreboard.PlayerResult{
			PlayerID:    p.ID,
			Name:        p.Name,
			TotalScore:  p.TotalScore,
			CorrectBids: p.CorrectBids,
		}
	}
	return scoreboard.Entry{
		RoomCode:     room.Code,
		CompletedAt:  m.now().UTC().Truncate(time.Second),
		BaseCards:    room.BaseCards,
		Players:      players,
		ScoreWinners: st.ScoreWinners,
		GuessWinners: st.GuessWinners,
		MegaWinners:  st.MegaWinners,
	}
}

// GetScoreboard 全部历史记录
func (m *GameManager) GetScoreboard(ctx context.Context) ([]scoreboard.Entry, error) {
	return m.store.List(ctx)
}

func (m *GameManager) notify(ids []string, code string, status RoomStatus) {
	m.notifyEvent(ids, websocket.EventRoomUpdated, code, status)
}

func (m *GameManager) notifyEvent(ids []string, event, code string, status RoomStatus) {
	if m.hub == nil {
		return
	}
	m.hub.BroadcastToPlayers(ids, websocket.OutgoingMessage{
		Event: event,
		Data: map[string]any{
			"room_code": code,
			"status":    status,
		},
	})
}
