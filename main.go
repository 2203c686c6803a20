package main

import (
	"log"
	"os"

	"PerfectCircle/internal/config"
	"PerfectCircle/internal/net"
	"PerfectCircle/internal/session"
	"PerfectCircle/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("bad configuration: %v", err)
	}
	round := session.NewRound(cfg.Tuning)

	mode := "solo"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	switch mode {
	case "host":
		runHost(cfg, round)
	case "join":
		addr := ""
		if len(os.Args) > 2 {
			addr = os.Args[2]
		}
		runJoin(cfg, round, addr)
	default:
		ui.RunApp(cfg, round, nil, nil)
	}
}

// runHost serves a party session: relay hub on cfg.Port, mDNS advertisement,
// and the local player's own game.
func runHost(cfg *config.Config, round *session.Round) {
	log.Println("starting as HOST")
	roster := net.NewRoster()
	hub := net.NewHub(roster)

	go func() {
		if err := hub.Listen(cfg.Port); err != nil {
			log.Fatalf("failed to start party host: %v", err)
		}
	}()

	if server, err := net.Advertise(cfg.Port); err != nil {
		log.Printf("mDNS advertisement failed, players must join by address: %v", err)
	} else {
		defer server.Shutdown()
	}

	if ip, err := net.OutgoingIP(); err == nil {
		log.Printf("players can join with: perfectcircle join %s:%d", ip, cfg.Port)
	}

	ui.RunApp(cfg, round, roster, func(res session.Result) {
		hub.Publish(cfg.PlayerName, res)
	})
}

// runJoin connects to a host, discovered over mDNS when no address is given.
func runJoin(cfg *config.Config, round *session.Round, addr string) {
	log.Println("starting as PLAYER")
	if addr == "" {
		found, err := net.FindHost()
		if err != nil {
			log.Fatalf("could not discover a host: %v", err)
		}
		addr = found
	}

	roster := net.NewRoster()
	client, err := net.Join(addr, cfg.PlayerName, roster)
	if err != nil {
		log.Fatalf("could not join %s: %v", addr, err)
	}
	defer client.Close()

	ui.RunApp(cfg, round, roster, client.Publish)
}
