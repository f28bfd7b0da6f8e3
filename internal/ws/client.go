package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"workspark/internal/delivery/http/dto"
	"workspark/internal/discovery"
	"workspark/internal/usecase"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// inbound is a message sent by the browser.
type inbound struct {
	Type     string              `json:"type"`
	Criteria *discovery.Criteria `json:"criteria,omitempty"`
}

// ListingMessage mirrors one composer snapshot.
type ListingMessage struct {
	Type       string                `json:"type"`
	State      discovery.State       `json:"state"`
	Generation uint64                `json:"generation"`
	Criteria   discovery.Criteria    `json:"criteria"`
	Query      string                `json:"query"`
	Total      int                   `json:"total"`
	Jobs       []dto.JobListResponse `json:"jobs"`
	Error      string                `json:"error,omitempty"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Client is one listing session. Each session owns a composer, so criteria
// changes from one browser never race another's.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	composer *discovery.Composer
	logger   *log.Logger
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, source discovery.JobSource, strict bool, logger *log.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		hub:    hub,
		conn:   conn,
		logger: logger,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
		send:   make(chan []byte, sendBuffer),
	}
	c.composer = discovery.NewComposer(source,
		discovery.WithStrict(strict),
		discovery.WithLogger(logger),
		discovery.WithOnChange(c.pushSnapshot),
	)
	return c
}

// enqueue hands msg to the writer; false means the session is gone or
// too slow to keep up.
func (c *Client) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) pushSnapshot(s discovery.Snapshot) {
	b, err := json.Marshal(c.listingMessage(s))
	if err != nil {
		return
	}
	c.enqueue(b)
}

func (c *Client) listingMessage(s discovery.Snapshot) ListingMessage {
	msg := ListingMessage{
		Type:       MessageTypeListing,
		State:      s.State,
		Generation: s.Generation,
		Criteria:   s.Criteria,
		Query:      s.Criteria.Values().Encode(),
		Jobs:       []dto.JobListResponse{},
	}
	if s.State == discovery.StateReady {
		msg.Jobs = dto.NewJobListResponses(usecase.PresentJobs(s.Jobs, c.now()))
		msg.Total = len(msg.Jobs)
	}
	if s.Err != nil {
		msg.Error = s.Err.Error()
	}
	return msg
}

// handle applies one inbound message to the composer.
func (c *Client) handle(raw []byte) {
	var in inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		c.pushError("malformed message")
		return
	}

	switch in.Type {
	case MessageTypeCriteria:
		if in.Criteria == nil {
			c.pushError("criteria missing")
			return
		}
		c.composer.Apply(c.ctx, *in.Criteria)
	case MessageTypeRetry:
		c.composer.Retry(c.ctx)
	default:
		c.pushError("unknown message type")
	}
}

func (c *Client) pushError(message string) {
	b, _ := json.Marshal(errorMessage{Type: MessageTypeError, Message: message})
	c.enqueue(b)
}

// ReadPump runs until the browser goes away. A strict composer panics on
// invalid criteria; that ends only this session.
func (c *Client) ReadPump() {
	defer func() {
		if r := recover(); r != nil && c.logger != nil {
			c.logger.Printf("[WS] Session closed on invalid criteria: %v", r)
		}
		c.cancel()
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.pushSnapshot(c.composer.Snapshot())

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.logger != nil {
				c.logger.Printf("[WS] Read error | error=%v", err)
			}
			return
		}
		c.handle(raw)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
