// Package ws serves the WebSocket echo listener.
package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tohsaka888/societies-server/internal/logging"
)

// Echo writes every text or binary message back to the connection it came from.
type Echo struct {
	upgrader websocket.Upgrader
	log      logging.Logger
}

func NewEcho(log logging.Logger) *Echo {
	return &Echo{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The echo carries no credentials; any page may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log.With("component", "ws"),
	}
}

func (e *Echo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := e.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		e.log.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	e.log.Debug(r.Context(), "websocket connected", "remote", conn.RemoteAddr().String())

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				e.log.Debug(r.Context(), "websocket read ended", "error", err)
			}
			return
		}
		if err := conn.WriteMessage(mt, msg); err != nil {
			e.log.Warn(r.Context(), "websocket write failed", "error", err)
			return
		}
	}
}

// Server runs the echo on its own listener.
type Server struct {
	srv *http.Server
	log logging.Logger
}

func NewServer(addr string, log logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewEcho(log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Start blocks until the listener stops. A graceful shutdown returns nil.
func (s *Server) Start() error {
	s.log.Info(context.Background(), "starting WebSocket server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
