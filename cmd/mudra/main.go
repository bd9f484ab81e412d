package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/store"
)

func main() {
	fmt.Println("Mudra - Sign Language Translation")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}

		dbDir := filepath.Join(homeDir, ".mudra")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dbDir, "mudra.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	if err := st.Signs().Seed(); err != nil {
		log.Fatalf("Failed to seed sign vocabulary: %v", err)
	}

	sess := session.New(session.Config{
		Store: st,
		Features: feature.Config{
			ThumbExtension:     cfg.ThumbExtension,
			FingerExtension:    cfg.FingerExtension,
			DirectionThreshold: cfg.DirectionThreshold,
			HighBand:           cfg.HighBand,
			LowBand:            cfg.LowBand,
		},
		BufferSize: cfg.BufferSize,
		Consensus:  cfg.Consensus,
		Cooldown:   cfg.Cooldown(),
	})

	events := server.NewEventsHandler()
	sess.OnEvent = events.Publish

	// Try the landmark bridge first, fall back to the mock source
	var source detector.Source
	sourceCfg := detector.DefaultConfig()
	sourceCfg.CameraID = cfg.CameraID
	if bridge, err := detector.NewBridgeSource(sourceCfg); err == nil {
		source = bridge
		log.Println("Using MediaPipe landmark bridge")
	} else {
		log.Printf("Landmark bridge not available (%v), using mock source", err)
		source = detector.NewMockSource()
	}

	runner := session.NewRunner(source, sess, cfg.TickInterval())
	runner.Start()
	defer runner.Stop()

	srv := server.New(server.Config{
		Store:   st,
		Session: sess,
		Events:  events,
	})

	fmt.Printf("Starting server on %s\n", cfg.Addr)
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
