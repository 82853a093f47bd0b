// Package client keeps a viewer-side copy of the server's order list.
// The copy is disposable: a full snapshot is fetched on connect and push
// events only keep it fresh. Reconnecting means building a new Feed.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/minsmanse/bar/entity"
	"github.com/minsmanse/bar/ws"
)

type Feed struct {
	conn *websocket.Conn

	mu     sync.Mutex
	orders []entity.Order

	done chan struct{}
}

// Connect fetches the current order snapshot over REST, then subscribes to
// the realtime channel. baseURL is the http address of the bar server.
func Connect(baseURL string) (*Feed, error) {
	f := &Feed{done: make(chan struct{})}

	if err := f.fetchSnapshot(baseURL); err != nil {
		return nil, err
	}

	wsURL := strings.Replace(baseURL, "http", "ws", 1) + "/ws/orders"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial order feed: %w", err)
	}
	f.conn = conn

	go f.listen()
	return f, nil
}

func (f *Feed) fetchSnapshot(baseURL string) error {
	res, err := http.Get(baseURL + "/orders")
	if err != nil {
		return fmt.Errorf("fetch orders: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch orders: status %d", res.StatusCode)
	}

	var body struct {
		OK   bool           `json:"ok"`
		Data []entity.Order `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode orders: %w", err)
	}
	f.orders = body.Data
	return nil
}

func (f *Feed) listen() {
	defer close(f.done)

	for {
		var ev ws.OrderEvent
		if err := f.conn.ReadJSON(&ev); err != nil {
			return
		}
		f.apply(ev)
	}
}

// apply reconciles one push event into the local list. Duplicate and
// out-of-order delivery must land in the same final state, so created is
// ignored for ids already present and updated replaces strictly by id.
func (f *Feed) apply(ev ws.OrderEvent) {
	if ev.Order == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	switch ev.Event {
	case ws.EventOrderCreated:
		for _, o := range f.orders {
			if o.ID == ev.Order.ID {
				return
			}
		}
		// newest first for display
		f.orders = append([]entity.Order{*ev.Order}, f.orders...)

	case ws.EventOrderUpdated:
		// an id our snapshot has never seen is ignored; the next full
		// fetch will pick it up
		for i, o := range f.orders {
			if o.ID == ev.Order.ID {
				f.orders[i] = *ev.Order
				return
			}
		}
	}
}

// Orders returns a copy of the current local list.
func (f *Feed) Orders() []entity.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Order, len(f.orders))
	copy(out, f.orders)
	return out
}

// Close unsubscribes from the realtime channel and waits for the reader to
// stop, so no handler outlives the feed.
func (f *Feed) Close() error {
	err := f.conn.Close()
	<-f.done
	return err
}
