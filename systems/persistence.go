package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/netinterp/config"
	"github.com/automoto/netinterp/interp"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	Mode         string  `json:"mode"`
	BufferTimeMs float64 `json:"bufferTimeMs"`
	ShowRaw      bool    `json:"showRaw"`
	ShowHUD      bool    `json:"showHud"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "netinterp",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved
// or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live configuration
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Mode:         cfg.Interp.Mode.String(),
		BufferTimeMs: cfg.Interp.BufferTime * 1000,
		ShowRaw:      cfg.Debug.ShowRaw,
		ShowHUD:      cfg.Debug.ShowHUD,
	}
}

// SaveCurrentSettings saves the live configuration, ignoring errors
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettings copies loaded settings into the global configuration.
// Unknown modes and non-positive buffer times keep the current values.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if mode, ok := interp.ParseMode(saved.Mode); ok {
		cfg.Interp.Mode = mode
	} else {
		log.Printf("[persistence] ignoring unknown mode %q", saved.Mode)
	}
	if saved.BufferTimeMs > 0 {
		cfg.Interp.BufferTime = saved.BufferTimeMs / 1000
	}
	cfg.Debug.ShowRaw = saved.ShowRaw
	cfg.Debug.ShowHUD = saved.ShowHUD
}

// NewConfiguredBuffer returns a buffer using the current interpolation config.
func NewConfiguredBuffer() *interp.Buffer {
	return interp.NewBuffer(cfg.Interp.Mode, cfg.Interp.BufferTime)
}
