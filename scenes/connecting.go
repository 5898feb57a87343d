package scenes

import (
	"fmt"
	"log"

	cfg "github.com/automoto/netinterp/config"
	"github.com/automoto/netinterp/fonts"
	"github.com/automoto/netinterp/network"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ConnectingScene dials the server and hands the client to a NetworkedScene
// once the connection is up.
type ConnectingScene struct {
	sceneChanger SceneChanger
	netClient    *network.Client
	status       string
}

func NewConnectingScene(sc SceneChanger) *ConnectingScene {
	return &ConnectingScene{sceneChanger: sc}
}

func (s *ConnectingScene) Update() {
	if s.netClient == nil {
		s.connect()
		return
	}

	switch s.netClient.State() {
	case network.StateConnected:
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewNetworkedScene(s.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.status = errMsg + " - press ENTER to retry"
		if actionJustPressed(ActionRetry) {
			s.netClient.Disconnect()
			s.netClient = nil
		}

	case network.StateConnecting:
		s.status = fmt.Sprintf("Connecting to %s...", s.netClient.Address())

	case network.StateDisconnected:
		s.status = "Disconnected - press ENTER to retry"
		if actionJustPressed(ActionRetry) {
			s.netClient = nil
		}
	}
}

func (s *ConnectingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	text.Draw(screen, "netinterp viewer", fonts.Title.Get(), 20, 40, cfg.Orange)
	text.Draw(screen, s.status, fonts.Regular.Get(), 20, 70, cfg.StatusColor)
}

func (s *ConnectingScene) connect() {
	log.Printf("[connecting] dialing %s", cfg.Net.Address)
	s.netClient = network.NewClient()
	s.netClient.Connect(cfg.Net.Address, cfg.Net.ProtocolVersion, cfg.Net.PlayerName)
	s.status = "Connecting..."
}
