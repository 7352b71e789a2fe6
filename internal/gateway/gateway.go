// Package gateway serves the real-time channel: one WebSocket connection per
// client, JSON command frames in, result envelopes out. The gateway owns
// connection lifetime and ordering; command semantics live in the command
// package.
package gateway

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"server-aide/internal/command"
)

// Server upgrades HTTP requests to WebSocket sessions and runs their message
// loops.
type Server struct {
	disp     *command.Dispatcher
	services command.Services
	upgrader websocket.Upgrader
}

func New(disp *command.Dispatcher, services command.Services) *Server {
	return &Server{
		disp:     disp,
		services: services,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy is the proxy's job in this deployment.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run serves the /ws endpoint until ctx is cancelled; run in a goroutine.
func (s *Server) Run(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.handleWS(ctx, w, r)
	})

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down gateway...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	log.Printf("[INFO] Gateway listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] WebSocket upgrade failed: %v", err)
		return
	}

	sess := newSession(conn, s.disp, s.services)
	log.Printf("[INFO] Session %s connected from %s", sess.id, conn.RemoteAddr())
	sess.run(ctx)
	log.Printf("[INFO] Session %s disconnected", sess.id)
}
