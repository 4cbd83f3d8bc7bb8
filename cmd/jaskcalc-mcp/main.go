package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/mcpserver"
	"github.com/jask/jaskcalc/internal/service"
)

const version = "0.1.0"

func main() {
	var (
		portFlag    = flag.Int("port", 0, "TCP port to listen on (0 for stdio)")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println(mcpserver.Name + " v" + version)
		fmt.Println("Model Context Protocol server for the jaskcalc desk calculator")
		os.Exit(0)
	}

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var tape *service.TapeService
	if cfg.Tape.Enabled {
		db, err := database.Setup(cfg.Tape.Path)
		if err != nil {
			log.Fatalf("tape: %v", err)
		}
		defer closeDB(db)
		tape = service.NewTapeService(db)
	}

	s := mcpserver.New(version, tape)

	if *portFlag == 0 {
		if err := server.ServeStdio(s); err != nil {
			log.Printf("server failed: %v", err)
		}
		return
	}
	httpServer := server.NewStreamableHTTPServer(s)
	log.Printf("Starting HTTP server on port %d", *portFlag)
	if err := httpServer.Start(fmt.Sprintf(":%d", *portFlag)); err != nil {
		log.Printf("HTTP server failed: %v", err)
	}
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("close db: %v", err)
	}
}
