package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/lguibr/dxball/audio"
	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/server"
	"github.com/lguibr/dxball/terminal"
	"github.com/lguibr/dxball/utils"
	"github.com/lguibr/dxball/window"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "JSON config file overlaid on the defaults")
	frontend := flag.String("frontend", "window", "frontend to run: window or terminal")
	soundDir := flag.String("sounds", ".", "directory holding cartoon_*.wav overrides")
	mute := flag.Bool("mute", false, "start with sound disabled")
	spectate := flag.String("spectate", "", "listen address for the spectator server (empty disables it)")
	seed := flag.Int64("seed", 0, "serve direction seed (0 seeds from the clock)")
	logPath := flag.String("log", "", "log file (the terminal frontend discards logs otherwise)")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Main: %v\n", err)
		return 1
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *frontend != "window" && *frontend != "terminal" {
		fmt.Fprintf(os.Stderr, "Main: unknown frontend %q\n", *frontend)
		return 1
	}

	closeLog, err := setupLogging(*frontend, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Main: %v\n", err)
		return 1
	}
	defer closeLog()

	log.Printf("Main: sound enabled: %s", yesNo(!*mute))
	for _, p := range audio.Inventory(*soundDir) {
		log.Printf("Main: %s.wav present: %s", p.File, yesNo(p.Found))
	}

	var notifier game.Notifier = game.NopNotifier{}
	if err := audio.Init(); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Audio: initialization failed: %v", err)
	} else {
		player := audio.NewPlayer(*soundDir, nil)
		defer audio.Shutdown()
		defer player.Close()
		notifier = player
	}

	session := game.StartGame(cfg, notifier)
	session.SetSoundEnabled(!*mute)

	var renderers []game.Renderer
	if *spectate != "" {
		spectators := server.New()
		defer spectators.Close()
		httpServer := &http.Server{Addr: *spectate, Handler: spectators.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Printf("Spectator: listening on %s", *spectate)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Spectator: server stopped: %v", err)
			}
		}()
		defer httpServer.Close()
		renderers = append(renderers, spectators)
	}

	if err := runFrontend(*frontend, cfg, session, renderers); err != nil {
		log.Printf("Main: %v", err)
		return 1
	}
	return 0
}

func runFrontend(frontend string, cfg utils.Config, session *game.Session, renderers []game.Renderer) error {
	if frontend == "terminal" {
		term, err := terminal.New(cfg, session, renderers...)
		if err != nil {
			return err
		}
		defer term.Close()
		return term.Run()
	}
	return window.New(cfg, session, renderers...).Run()
}

// setupLogging keeps log lines off the terminal frontend's screen.
func setupLogging(frontend, path string) (func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log %s: %w", path, err)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	}
	if frontend == "terminal" {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
