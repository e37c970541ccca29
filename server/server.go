package server

import (
	"net/http"
	"sync"

	"golang.org/x/net/websocket"

	"github.com/lguibr/dxball/game"
)

const subscriberBuffer = 8

// Server is the spectator endpoint. It implements game.Renderer: every rendered frame
// becomes the latest snapshot and is fanned out to websocket subscribers.
type Server struct {
	mu        sync.RWMutex
	latest    game.Snapshot
	hasLatest bool
	conns     map[*subscriber]bool
	closed    bool
}

type subscriber struct {
	frames chan game.Snapshot
	done   chan struct{}
	once   sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.done) })
}

func New() *Server {
	return &Server{conns: make(map[*subscriber]bool)}
}

// Render stores the snapshot and pushes it to every subscriber without blocking.
// A subscriber that has not drained its buffer misses the frame.
func (s *Server) Render(snapshot game.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.latest = snapshot
	s.hasLatest = true
	for sub := range s.conns {
		select {
		case sub.frames <- snapshot:
		default:
		}
	}
}

// Latest returns the last rendered snapshot, if any.
func (s *Server) Latest() (game.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasLatest
}

// Subscribers reports how many websocket spectators are attached.
func (s *Server) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conns)
}

func (s *Server) subscribe() (*subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	sub := &subscriber{
		frames: make(chan game.Snapshot, subscriberBuffer),
		done:   make(chan struct{}),
	}
	if s.hasLatest {
		sub.frames <- s.latest
	}
	s.conns[sub] = true
	return sub, true
}

func (s *Server) unsubscribe(sub *subscriber) {
	s.mu.Lock()
	delete(s.conns, sub)
	s.mu.Unlock()
	sub.close()
}

// Close detaches every subscriber; their handlers return and close the sockets.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for sub := range s.conns {
		sub.close()
		delete(s.conns, sub)
	}
}

// Handler routes GET / to the JSON snapshot and /subscribe to the websocket stream.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleGetState())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	return mux
}
