// order_websocket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hafiz1379/shopsphere/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClients is shared between handler goroutines and the broadcast path;
// every access goes through wsClientsMu.
var (
	wsClientsMu sync.Mutex
	wsClients   = make(map[*websocket.Conn]bool)
)

func addWSClient(conn *websocket.Conn) {
	wsClientsMu.Lock()
	wsClients[conn] = true
	wsClientsMu.Unlock()
}

func removeWSClient(conn *websocket.Conn) {
	wsClientsMu.Lock()
	delete(wsClients, conn)
	wsClientsMu.Unlock()
}

// OrderWebSocketHandler feeds the admin dashboard with orders as they get paid.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	addWSClient(conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			removeWSClient(conn)
			break
		}
	}
}

func broadcastPaidOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
