// File: server/client.go
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/websocket"

	"github.com/lguibr/dxball/game"
)

// Watch subscribes to a spectator server at base (http:// or ws:// URL) and hands every
// snapshot to fn until ctx is cancelled or the server closes the stream.
func Watch(ctx context.Context, base, format string, fn func(game.Snapshot)) error {
	target, origin, err := subscribeURL(base, format)
	if err != nil {
		return err
	}
	ws, err := websocket.Dial(target, "", origin)
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	defer ws.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = ws.Close()
		case <-stop:
		}
	}()

	codec, _ := codecFor(format)
	for {
		var snap game.Snapshot
		if err := codec.Receive(ws, &snap); err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("receive: %w", err)
		}
		fn(snap)
	}
}

// subscribeURL turns a server base address into the websocket endpoint and its origin.
func subscribeURL(base, format string) (string, string, error) {
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", "", fmt.Errorf("spectator address %q: %w", base, err)
	}
	origin := &url.URL{Host: u.Host}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme, origin.Scheme = "ws", "http"
	case "https", "wss":
		u.Scheme, origin.Scheme = "wss", "https"
	default:
		return "", "", fmt.Errorf("spectator address %q: unsupported scheme %q", base, u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/subscribe"
	u.RawQuery = ""
	if format != "" {
		u.RawQuery = url.Values{"format": {format}}.Encode()
	}
	return u.String(), origin.String() + "/", nil
}
