package orderControllers

import (
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// Register and remove from many goroutines at once; without the mutex this
// panics on concurrent map writes.
func TestWSClientRegistryConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := &websocket.Conn{}
			addWSClient(conn)
			removeWSClient(conn)
		}()
	}
	wg.Wait()

	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	assert.Empty(t, wsClients)
}
