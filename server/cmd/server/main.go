package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/netinterp/server/core"
	"github.com/automoto/netinterp/shared/netconfig"
	"github.com/automoto/netinterp/shared/protocol"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	port := flag.Uint("port", netconfig.DefaultPort, "Server port")
	tickRate := flag.Int("tickrate", netconfig.DefaultTickRate, "Snapshots per second")
	jitter := flag.Float64("jitter", 0, "Max random extra delay per snapshot in milliseconds")
	drifters := flag.Int("drifters", 6, "Number of moving bodies")
	name := flag.String("name", "netinterp server", "Server display name")
	version := flag.String("version", netconfig.ProtocolVersion, "Required viewer version (empty = accept any)")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tickrate must be positive, got %d", *tickRate)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(core.Options{
		TickRate: *tickRate,
		Jitter:   *jitter,
		Drifters: *drifters,
		Name:     *name,
		Version:  *version,
		Center:   mgl64.Vec3{480, 270, 0},
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (tick rate: %d/s, jitter: %.0fms, drifters: %d)",
		*name, *port, *tickRate, *jitter, *drifters)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
