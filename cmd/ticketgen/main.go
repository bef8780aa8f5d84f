package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"laneboard/cmd/ticketgen/engine"
)

func main() {
	count := flag.Int("count", 20, "Number of tickets to generate")
	members := flag.Int("members", 4, "Number of roster members")
	outDir := flag.String("out", "./.cache", "Output directory for fixture files")
	serve := flag.Bool("serve", false, "Serve the snapshot at the tracker API shape instead of writing files")
	addr := flag.String("addr", ":9090", "Listen address for -serve")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Count:   *count,
		Members: *members,
		Now:     time.Now(),
	}

	tickets, roster := engine.Generate(cfg)

	if *serve {
		fmt.Printf("Serving %d tickets / %d members on %s...\n", len(tickets), len(roster), *addr)
		if err := http.ListenAndServe(*addr, engine.Handler(tickets, roster)); err != nil {
			fmt.Printf("Server stopped: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Generating %d tickets / %d members to %s...\n", len(tickets), len(roster), *outDir)
	if err := engine.Save(*outDir, tickets, roster); err != nil {
		fmt.Printf("Failed to save fixtures: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done.")
}
