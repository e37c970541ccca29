// Command spectator follows a running game from its spectator server and prints the HUD
// and menu pages as they change.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/render"
	"github.com/lguibr/dxball/server"
)

func main() {
	addr := flag.String("addr", "localhost:3001", "spectator server address")
	format := flag.String("format", "msgpack", "stream format: json or msgpack")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := follow(ctx, *addr, *format, os.Stdout); err != nil {
		fmt.Println("Error watching server:", err)
		os.Exit(1)
	}
}

// follow prints the connection line once the first frame arrives, then every visible change.
func follow(ctx context.Context, addr, format string, out io.Writer) error {
	connected := false
	last := ""
	return server.Watch(ctx, addr, format, func(snap game.Snapshot) {
		if !connected {
			fmt.Fprintln(out, "Connected, watching", addr)
			connected = true
		}
		if line := describe(snap); line != last {
			fmt.Fprintln(out, line)
			last = line
		}
	})
}

// describe reduces a frame to one line; unchanged lines are not printed again.
func describe(snap game.Snapshot) string {
	if page := render.Page(snap); len(page) > 0 {
		texts := make([]string, 0, len(page))
		for _, line := range page {
			if line.Text != "" {
				texts = append(texts, line.Text)
			}
		}
		return "[" + snap.State + "] " + strings.Join(texts, " | ")
	}
	return "[" + snap.State + "] " + strings.Join(render.HUD(snap), "  ")
}
