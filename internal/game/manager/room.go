package manager

import (
	"time"

	"Judgment/internal/game/engine"
	"Judgment/internal/scoreboard"
)

// RoomStatus 房间状态：waiting → playing → finished
type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

const roomCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Room 一个房间；座位顺序 = 加入顺序，开局后不再变化
type Room struct {
	Code       string
	CreatedAt  time.Time
	HostID     string
	Players    []*engine.Player
	Status     RoomStatus
	Game       *engine.Game
	LastResult *scoreboard.Entry
	BaseCards  int
}

func (r *Room) playerIDs() []string {
	ids := make([]string, len(r.Players))
	for i, p := range r.Players {
		ids[i] = p.ID
	}
	return ids
}

func (r *Room) player(id string) *engine.Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) playerName(id string) string {
	if p := r.player(id); p != nil {
		return p.Name
	}
	return "Unknown"
}

// 日志里用 name(id 前 6 位)
func (r *Room) playerLog(id string) string {
	short := id
	if len(short) > 6 {
		short = short[:6]
	}
	return r.playerName(id) + "(" + short + ")"
}

// 以下方法都要求调用方持有 GameManager.mu

func (m *GameManager) generateRoomCode() string {
	buf := make([]byte, 4)
	for {
		for i := range buf {
			buf[i] = roomCodeLetters[m.rnd.Intn(len(roomCodeLetters))]
		}
		code := string(buf)
		if _, exists := m.rooms[code]; !exists {
			return code
		}
	}
}

func (m *GameManager) generatePlayerID() string {
	for {
		id := m.newID()
		if !m.playerIDTaken(id) {
			return id
		}
	}
}

func (m *GameManager) playerIDTaken(id string) bool {
	for _, room := range m.rooms {
		if room.player(id) != nil {
			return true
		}
	}
	return false
}
