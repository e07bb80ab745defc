package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sharemyshows-live/contract"
	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"

	"github.com/gorilla/websocket"
)

var _ contract.EventSink = (*Conn)(nil)

type ConnConfig struct {
	BufferSize   int
	PingInterval time.Duration
	WriteWait    time.Duration
	MaxFrameSize int64
}

// pongWait leaves the client a little more than one ping interval to answer.
func (c ConnConfig) pongWait() time.Duration {
	return c.PingInterval * 10 / 9
}

// Conn is one browser tab. The engine pushes into send without blocking;
// the write pump is the only goroutine writing to the socket.
type Conn struct {
	log       *slog.Logger
	ws        *websocket.Conn
	codec     *Codec
	config    ConnConfig
	send      chan event.Event
	done      chan struct{}
	closeOnce sync.Once
	socketID  domain.SocketID
}

func NewConn(log *slog.Logger, ws *websocket.Conn, codec *Codec, config ConnConfig) *Conn {
	return &Conn{
		log:    log,
		ws:     ws,
		codec:  codec,
		config: config,
		send:   make(chan event.Event, config.BufferSize),
		done:   make(chan struct{}),
	}
}

// Consume never blocks the caller: a full buffer means the client is too slow
// and the event is lost for this tab only.
func (c *Conn) Consume(ctx context.Context, e event.Event) error {
	select {
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
	}
	select {
	case c.send <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSlowConsumer
	}
}

// Close stops the write pump, which then closes the socket.
func (c *Conn) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// readPump decodes frames until the client leaves or stops answering pings.
// Invalid frames are answered with an error event and never reach the engine.
func (c *Conn) readPump(engine contract.IPresenceEngine) {
	c.ws.SetReadLimit(c.config.MaxFrameSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.config.pongWait()))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.config.pongWait()))
	})

	for {
		kind, frame, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("Websocket read failed", "socket_id", c.socketID, "error", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		cmd, err := c.codec.Decode(frame)
		if err != nil {
			_ = c.Consume(context.Background(), event.Error{Message: errors.Message(err)})
			continue
		}
		engine.Dispatch(c.socketID, cmd)
	}
}

// writePump drains send and keeps the connection alive with pings.
func (c *Conn) writePump() {
	ticker := time.NewTicker(c.config.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case evt := <-c.send:
			if err := c.write(evt); err != nil {
				c.log.Debug("Websocket write failed", "socket_id", c.socketID, "event", evt.Name(), "error", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Conn) write(evt event.Event) error {
	frame, err := Encode(evt)
	if err != nil {
		return err
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
	return c.ws.WriteMessage(websocket.TextMessage, frame)
}

// flush writes what is already buffered, used before refusing a connection.
func (c *Conn) flush() {
	for {
		select {
		case evt := <-c.send:
			if err := c.write(evt); err != nil {
				return
			}
		default:
			return
		}
	}
}
