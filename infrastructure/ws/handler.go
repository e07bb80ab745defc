package ws

import (
	"log/slog"
	"net/http"
	"time"

	"sharemyshows-live/auth"
	"sharemyshows-live/contract"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

const handshakeTimeout = 10 * time.Second

// Handler upgrades /ws requests and drives one Conn per socket.
type Handler struct {
	log      *slog.Logger
	engine   contract.IPresenceEngine
	codec    *Codec
	config   ConnConfig
	origins  []string
	upgrader websocket.Upgrader
}

func NewHandler(log *slog.Logger, engine contract.IPresenceEngine, codec *Codec,
	config ConnConfig, origins []string) *Handler {
	h := &Handler{
		log:     log,
		engine:  engine,
		codec:   codec,
		config:  config,
		origins: origins,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: handshakeTimeout,
		CheckOrigin:      h.checkOrigin,
	}
	return h
}

// checkOrigin rejects browsers from an origin outside CORS_ORIGINS.
// A request without Origin does not come from a browser and is accepted.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || lo.Contains(h.origins, "*") || lo.Contains(h.origins, origin) {
		return true
	}
	h.log.Warn("Websocket rejected from unauthorized origin", "origin", origin)
	return false
}

// ServeHTTP blocks for the lifetime of the socket. A refused token still gets
// its error event before the close frame.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	conn := NewConn(h.log, ws, h.codec, h.config)

	session, err := h.engine.Connect(r.Context(), auth.TokenFromRequest(r), conn)
	if err != nil {
		h.log.Info("Connection refused", "remote", r.RemoteAddr, "error", err)
		_ = conn.Consume(r.Context(), event.Error{Message: errors.Message(err)})
		conn.flush()
		_ = ws.SetWriteDeadline(time.Now().Add(h.config.WriteWait))
		_ = ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, errors.Message(err)))
		_ = ws.Close()
		return
	}
	conn.socketID = session.SocketID

	go conn.writePump()
	conn.readPump(h.engine)

	h.engine.Disconnect(session.SocketID)
	conn.Close()
}
