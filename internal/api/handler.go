package api

import (
	"errors"
	"net/http"

	"Judgment/internal/game/engine"
	"Judgment/internal/game/manager"
	"Judgment/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	mgr *manager.GameManager
}

func NewHandler(mgr *manager.GameManager) *Handler {
	return &Handler{mgr: mgr}
}

// Register 挂载 /api/* 路由
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/create_room", h.CreateRoom)
	api.POST("/join_room", h.JoinRoom)
	api.POST("/start_game", h.StartGame)
	api.POST("/submit_bid", h.SubmitBid)
	api.POST("/play_card", h.PlayCard)
	api.GET("/state", h.State)
	api.GET("/scoreboard", h.Scoreboard)
}

// 引擎错误 -> HTTP 状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrNotHost):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrRoomStatus):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func fail(c *gin.Context, err error) {
	utils.Log.Warn("request failed", "path", c.FullPath(), "err", err)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	utils.Log.Warn("request failed", "path", c.FullPath(), "err", msg)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// POST /api/create_room body: {host_name, base_cards}
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	base := engine.DefaultBaseCards
	if req.BaseCards != nil {
		base = *req.BaseCards
	}
	info, err := h.mgr.CreateRoom(c.Request.Context(), req.HostName, base)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// POST /api/join_room body: {room_code, player_name}
func (h *Handler) JoinRoom(c *gin.Context) {
	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	info, err := h.mgr.JoinRoom(c.Request.Context(), req.RoomCode, req.PlayerName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// POST /api/start_game body: {room_code, player_id}
func (h *Handler) StartGame(c *gin.Context) {
	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	if err := h.mgr.StartGame(c.Request.Context(), req.RoomCode, req.PlayerID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /api/submit_bid body: {room_code, player_id, bid}
func (h *Handler) SubmitBid(c *gin.Context) {
	var req SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Bid == nil {
		badRequest(c, "bid must be an integer")
		return
	}
	if err := h.mgr.SubmitBid(c.Request.Context(), req.RoomCode, req.PlayerID, *req.Bid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /api/play_card body: {room_code, player_id, card}
func (h *Handler) PlayCard(c *gin.Context) {
	var req PlayCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	if err := h.mgr.PlayCard(c.Request.Context(), req.RoomCode, req.PlayerID, req.Card); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/state?room=&player_id=
func (h *Handler) State(c *gin.Context) {
	room := c.Query("room")
	if room == "" {
		badRequest(c, "room parameter required")
		return
	}
	view, err := h.mgr.GetState(c.Request.Context(), room, c.Query("player_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, view)
}

// GET /api/scoreboard
func (h *Handler) Scoreboard(c *gin.Context) {
	entries, err := h.mgr.GetScoreboard(c.Request.Context())
	if err != nil {
		utils.Log.Error("scoreboard read failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
