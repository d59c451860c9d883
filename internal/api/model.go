package api

// CreateRoomRequest base_cards 省略时为 8
type CreateRoomRequest struct {
	HostName  string `json:"host_name"`
	BaseCards *int   `json:"base_cards"`
}

type JoinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

type StartGameRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

// SubmitBidRequest bid 必须是整数（缺省或非整数直接 400）
type SubmitBidRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
	Bid      *int   `json:"bid"`
}

// PlayCardRequest card 形如 "AS"、"10H"
type PlayCardRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
	Card     string `json:"card"`
}
