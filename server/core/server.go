package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/netinterp/shared/messages"
	"github.com/automoto/netinterp/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// ErrVersionMismatch is returned when a viewer joins with another protocol version.
var ErrVersionMismatch = errors.New("protocol version mismatch")

// Options configures a Server.
type Options struct {
	TickRate int     // Snapshots per second
	Jitter   float64 // Max extra delay per tick, in ms
	Drifters int
	Name     string
	Version  string // Required viewer version, empty accepts any
	Center   mgl64.Vec3
}

// session is a connected viewer
type session struct {
	Token  string
	Name   string
	Joined bool
}

// Server simulates drifting bodies and streams them to viewers.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	opts      Options

	drifters map[donburi.Entity]*Drifter

	sessions map[*router.NetworkClient]*session
	mu       sync.RWMutex
}

// NewServer creates a server and spawns its drifters
func NewServer(opts Options) (*Server, error) {
	world := donburi.NewWorld()

	s := &Server{
		world:    world,
		opts:     opts,
		drifters: make(map[donburi.Entity]*Drifter),
		sessions: make(map[*router.NetworkClient]*session),
	}
	s.loop = NewGameLoop(s, opts.TickRate, opts.Jitter)

	// Set up the world for esync
	srvsync.UseEsync(world)

	for i := 0; i < opts.Drifters; i++ {
		if err := s.spawnDrifter(NewDrifter(i, opts.Drifters, opts.Center)); err != nil {
			return nil, fmt.Errorf("spawn drifter %d: %w", i, err)
		}
	}

	s.setupRouterCallbacks()

	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) spawnDrifter(d *Drifter) error {
	entity := s.world.Create(netcomponents.NetTransform, netcomponents.NetBody)
	entry := s.world.Entry(entity)
	netcomponents.NetTransform.SetValue(entry, d.Transform())
	netcomponents.NetBody.SetValue(entry, d.Body())

	if err := srvsync.NetworkSync(s.world, &entity,
		netcomponents.NetTransform,
		netcomponents.NetBody,
	); err != nil {
		s.world.Remove(entity)
		return err
	}

	s.drifters[entity] = d
	return nil
}

// Step advances every drifter by dt milliseconds and writes the new poses.
// Only the game loop goroutine calls it.
func (s *Server) Step(dt float64) {
	for entity, d := range s.drifters {
		if !s.world.Valid(entity) {
			delete(s.drifters, entity)
			continue
		}
		d.Step(dt)
		netcomponents.NetTransform.SetValue(s.world.Entry(entity), d.Transform())
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		if err := s.onJoin(client, req); err != nil {
			log.Printf("[server] rejecting %s: %v", client.Id(), err)
		}
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[client] = &session{Token: token}
	s.mu.Unlock()

	log.Printf("[server] client %s connected (session %s)", client.Id(), token)
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) error {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		return fmt.Errorf("%w: got %q, want %q", ErrVersionMismatch, req.Version, s.opts.Version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[client]
	if !ok {
		return fmt.Errorf("join from unknown client %s", client.Id())
	}
	sess.Name = req.PlayerName
	sess.Joined = true

	log.Printf("[server] %q joined (session %s)", req.PlayerName, sess.Token)
	return nil
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	s.mu.Lock()
	sess, ok := s.sessions[client]
	delete(s.sessions, client)
	s.mu.Unlock()

	if !ok {
		return
	}
	if err != nil {
		log.Printf("[server] session %s disconnected with error: %v", sess.Token, err)
	} else {
		log.Printf("[server] session %s disconnected", sess.Token)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined viewers
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sess := range s.sessions {
		if sess.Joined {
			n++
		}
	}
	return n
}
