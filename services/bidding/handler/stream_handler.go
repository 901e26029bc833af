package handler

import (
	"fmt"
	"net/http"
	"time"

	"agri-auction/services/bidding/helpers"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Origin checks belong to the auth layer in front of this service.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const streamWriteTimeout = 10 * time.Second

// StreamHandler handles GET /lots/:lot_id/stream. It upgrades the connection
// to a websocket and pushes every highest-bid-changed event for the lot.
// Events carry the ledger sequence number, so clients can drop duplicates
// after a reconnect. A client that stops reading is disconnected when its
// subscription is evicted.
func (h *BiddingHandler) StreamHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	events, cancel, err := h.service.Subscribe(lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		cancel()
		utils.Warn("StreamHandler: upgrade failed", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.Info("StreamHandler: subscriber connected", map[string]any{"lot_id": lotID})

	// Reader goroutine: we expect no inbound messages, but reading is what
	// surfaces the close frame when the client goes away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		cancel()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Evicted by the broker; tell the client why before closing.
				deadline := time.Now().Add(streamWriteTimeout)
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscriber evicted"), deadline)
				return
			}
			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				utils.Info("StreamHandler: subscriber write failed", map[string]any{
					"lot_id": lotID,
					"error":  err.Error(),
				})
				return
			}
		case <-done:
			return
		}
	}
}
