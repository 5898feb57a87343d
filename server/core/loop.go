package core

import (
	"log"
	"math/rand"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop steps the simulation and syncs snapshots at a fixed rate. Each
// sync is delayed by a random extra amount up to jitter so viewers see
// irregular arrivals.
type GameLoop struct {
	server   *Server
	tickRate int
	jitter   time.Duration
	last     time.Time
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int, jitterMs float64) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		jitter:   time.Duration(jitterMs * float64(time.Millisecond)),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second (jitter up to %v)", g.tickRate, g.jitter)
	g.last = time.Now()

	for {
		select {
		case <-g.stopChan:
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			if !g.sleepJitter() {
				return
			}
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// sleepJitter waits a random delay in [0, jitter). It returns false if the
// loop was stopped while waiting.
func (g *GameLoop) sleepJitter() bool {
	if g.jitter <= 0 {
		return true
	}
	delay := time.Duration(rand.Int63n(int64(g.jitter)))
	select {
	case <-g.stopChan:
		log.Println("[loop] stopped")
		return false
	case <-time.After(delay):
		return true
	}
}

func (g *GameLoop) tick() {
	now := time.Now()
	dt := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now

	g.server.Step(dt)

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[loop] sync error: %v", err)
	}
}
