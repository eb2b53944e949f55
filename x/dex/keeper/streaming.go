package keeper

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/openalpha/dex/x/dex/types"
)

// Hub fans out settled trades to websocket subscribers, grounded in the
// pack's api/websocket hub/client split but cut down to the one thing the
// matching engine itself needs to push: a trade feed. It never reads back
// from a connection and never affects consensus state; a trade is
// broadcast only after settleFill has already committed it to the store.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]chan []byte
}

// NewHub returns an empty trade-feed hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]chan []byte)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and registers it for trade broadcasts
// until the client disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	send := make(chan []byte, 64)

	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for msg := range send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

type tradeEvent struct {
	PairHash string `json:"pair_hash"`
	Price    string `json:"price"`
	BaseQty  string `json:"base_qty"`
	QuoteQty string `json:"quote_qty"`
	Block    int64  `json:"block"`
}

// broadcastTrade pushes trade to every connected client's send buffer,
// dropping the message for any client whose buffer is full rather than
// blocking the match loop on a slow reader. h may be nil when no hub has
// been attached, in which case this is a no-op.
func (h *Hub) broadcastTrade(trade *types.Trade) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(tradeEvent{
		PairHash: trade.PairHash.String(),
		Price:    trade.Price.String(),
		BaseQty:  trade.BaseAmount.String(),
		QuoteQty: trade.QuoteAmount.String(),
		Block:    trade.Block,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, send := range h.clients {
		select {
		case send <- msg:
		default:
		}
	}
}

// SetHub attaches a trade-feed hub; CreateOrder/CancelOrder never know
// it exists, only settleFill does.
func (k *Keeper) SetHub(h *Hub) {
	k.hub = h
}
