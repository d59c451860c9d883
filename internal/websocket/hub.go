package websocket

import (
	"sync"

	"Judgment/internal/utils"
)

// Hub 按玩家 id 管理连接，只负责推送，不处理游戏逻辑
type Hub struct {
	clients    map[string]*Client // player id -> client
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastReq
	sendOne    chan sendReq
	quit       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
}

type broadcastReq struct {
	Addresses []string
	Message   OutgoingMessage
}

type sendReq struct {
	Address string
	Message OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastReq, 64),
		sendOne:    make(chan sendReq, 64),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Log.Info("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			// 同一玩家重复连接：旧连接让位
			if old, ok := h.clients[c.Address]; ok && old != c {
				close(old.Send)
			}
			h.clients[c.Address] = c
			n := len(h.clients)
			h.mu.Unlock()
			utils.Log.Debug("hub register", "player", c.Address, "connections", n)

		case c := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[c.Address]; ok && cur == c {
				delete(h.clients, c.Address)
				close(c.Send)
				utils.Log.Debug("hub unregister", "player", c.Address, "connections", len(h.clients))
			}
			h.mu.Unlock()

		case req := <-h.broadcast:
			h.mu.RLock()
			for _, addr := range req.Addresses {
				if client, ok := h.clients[addr]; ok {
					h.deliver(client, req.Message)
				}
			}
			h.mu.RUnlock()

		case req := <-h.sendOne:
			h.mu.RLock()
			if client, ok := h.clients[req.Address]; ok {
				h.deliver(client, req.Message)
			}
			h.mu.RUnlock()

		case <-h.quit:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			utils.Log.Info("hub stopped")
			return
		}
	}
}

// 慢客户端直接丢消息，客户端收到下一条 room_updated 后会重新拉状态
func (h *Hub) deliver(c *Client, msg OutgoingMessage) {
	select {
	case c.Send <- msg:
	default:
		utils.Log.Warn("dropping message for slow client", "player", c.Address, "event", msg.Event)
	}
}

// BroadcastToPlayers Hub 关闭后调用不会阻塞
func (h *Hub) BroadcastToPlayers(ids []string, msg OutgoingMessage) {
	select {
	case h.broadcast <- broadcastReq{Addresses: ids, Message: msg}:
	case <-h.quit:
	}
}

func (h *Hub) SendToPlayer(id string, msg OutgoingMessage) {
	select {
	case h.sendOne <- sendReq{Address: id, Message: msg}:
	case <-h.quit:
	}
}

// Connections 当前连接数
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}
