package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/replay"
	"github.com/jask/jaskcalc/internal/service"
	"github.com/jask/jaskcalc/internal/tui"
)

func main() {
	var (
		replayFlag = flag.String("replay", "", "replay a key script, e.g. '12+7=' or '9{sqrt}', instead of starting the TUI")
		delayFlag  = flag.Duration("delay", 250*time.Millisecond, "pause between keys in -replay mode")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *replayFlag != "" {
		os.Exit(runReplay(ctx, *replayFlag, *delayFlag))
	}

	if path := os.Getenv("JASKCALC_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "jaskcalc")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("config: %v", err)
	}

	var tape *service.TapeService
	if cfg.Tape.Enabled {
		db, err := database.Setup(cfg.Tape.Path)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("tape: %v", err)
		}
		defer closeDB(db)
		tape = service.NewTapeService(db)
	}

	p := tea.NewProgram(tui.New(ctx, cfg, tape), tea.WithAltScreen(), tea.WithContext(ctx))
	loader.Watch(func(c config.Config, err error) {
		p.Send(tui.ConfigMsg{Config: c, Err: err})
	})
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func runReplay(ctx context.Context, keys string, delay time.Duration) int {
	display, err := replay.Script(ctx, os.Stdout, keys, delay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 1
	}
	fmt.Println(display)
	return 0
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("close db: %v", err)
	}
}
