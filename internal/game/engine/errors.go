package engine

import "errors"

// 所有错误都是调用方输入/状态前置条件不满足，不做重试
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomStatus   = errors.New("room is not in the expected status")
	ErrNotHost      = errors.New("only the host can start the game")
	ErrCapacity     = errors.New("player limit reached")
	ErrNotYourTurn  = errors.New("it is not your turn")
	ErrWrongPhase   = errors.New("action not allowed in this phase")
	ErrRule         = errors.New("rule violation")
)
