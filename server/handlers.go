// File: server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"runtime/debug"

	"golang.org/x/net/websocket"
)

// HandleSubscribe streams snapshots to one spectator until either side goes away.
// Spectators are read-only: anything they send is discarded.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.Request().RemoteAddr
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		codec, format := codecFor(ws.Request().URL.Query().Get("format"))

		sub, ok := s.subscribe()
		if !ok {
			log.Printf("Spectator: server closed, rejecting %s", connectionAddr)
			return
		}
		defer s.unsubscribe(sub)
		log.Printf("Spectator: %s subscribed (%s)", connectionAddr, format)

		gone := make(chan struct{})
		go s.readLoop(ws, gone)

		for {
			select {
			case <-gone:
				log.Printf("Spectator: %s disconnected", connectionAddr)
				return
			case <-sub.done:
				return
			case frame := <-sub.frames:
				if err := codec.Send(ws, frame); err != nil {
					log.Printf("Spectator: send to %s failed: %v", connectionAddr, err)
					return
				}
			}
		}
	}
}

// readLoop drains the socket so a client close is noticed.
func (s *Server) readLoop(ws *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)
	buffer := make([]byte, 512)
	for {
		if _, err := ws.Read(buffer); err != nil {
			if err != io.EOF {
				log.Printf("Spectator: read from %s: %v", ws.Request().RemoteAddr, err)
			}
			return
		}
	}
}

// HandleGetState serves the latest snapshot as JSON.
func (s *Server) HandleGetState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("PANIC recovered in HandleGetState: %v\nStack trace:\n%s", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		snapshot, ok := s.Latest()
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error": "no frame rendered yet"}`))
			return
		}

		body, err := json.Marshal(snapshot)
		if err != nil {
			http.Error(w, "Error generating game state", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			log.Printf("Spectator: error writing HTTP game state: %v", err)
		}
	}
}
