package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"match-canon/core/config"
	"match-canon/core/storage"
	"match-canon/feature/canon"
	"match-canon/feature/convert"
	"match-canon/feature/players"

	"go.uber.org/zap"
)

// Prints a stored match hand by hand from both formats, with the tile
// conservation check of every game.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <match-id>", os.Args[0])
	}
	id, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	entries, err := players.LoadFile(cfg.Convert.PlayersFile)
	if err != nil {
		log.Fatal(err)
	}
	resolver := players.NewFileResolver(entries)

	svc := convert.NewService(client, cfg.Storage.Bucket, cfg.Convert, resolver, zap.NewNop())
	ctx := context.Background()

	for _, format := range convert.Formats {
		fmt.Printf("=== %s (%s) ===\n", format, svc.InputKey(format, id))
		match, err := svc.DecodeStored(ctx, format, id)
		if err != nil {
			fmt.Printf("decode failed: %v\n\n", err)
			continue
		}
		dump(match)
	}
}

func dump(m *canon.Match) {
	for seat, p := range m.Players {
		fmt.Printf("seat %d: %-16s score=%6d income=%7.1f rank=%d\n", seat, p.Name, p.Score, p.Income, p.Rank)
	}
	for i := range m.Games {
		g := &m.Games[i]
		fmt.Printf("\n-- game %d round=%d honba=%d bets=%d dealer=%d\n", i, g.Round, g.DealerKeepingCount, g.Bets, g.Dealer())
		fmt.Printf("dora=%v hidden=%v\n", g.Dora, g.HiddenDora)
		for seat, hand := range g.DealtTiles {
			fmt.Printf("dealt %d: %v\n", seat, hand)
		}
		for _, e := range g.Events {
			fmt.Println("  ", e)
		}
		for _, r := range g.Results {
			fmt.Printf("result %s deltas=%v\n", r.Kind, r.ScoreDeltas)
		}
		if err := canon.CheckTileConservation(*g); err != nil {
			fmt.Printf("CONSERVATION: %v\n", err)
		}
	}
	fmt.Println()
}
