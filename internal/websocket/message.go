package websocket

type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// 推送事件名
const (
	EventRoomUpdated = "room_updated"
	EventGameOver    = "game_over"
	EventHandUpdated = "hand_updated"
)
