package config

import (
	"fmt"
	"time"

	"SonicSavor/internal/dialogue"
	"github.com/caarlos0/env/v11"
)

// ServerEnv holds the settings the HTTP server reads at start. Clients in
// pkg/ still read their own credentials from the environment.
type ServerEnv struct {
	Port           string        `env:"APP_PORT" envDefault:"8000"`
	AdminUsername  string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword  string        `env:"ADMIN_PASSWORD"`
	CancelWindow   time.Duration `env:"ORDER_CANCEL_WINDOW" envDefault:"5m"`
	MenuCacheTTL   time.Duration `env:"MENU_CACHE_TTL" envDefault:"10m"`
	TokenTTL       time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RestaurantMail string        `env:"RESTAURANT_EMAIL"`
	RabbitURL      string        `env:"RABBITMQ_URL"`
	Dialogue       DialogueEnv
}

// DialogueEnv configures a dialogue host: the kiosk, the admin CLI and the
// server's websocket sessions.
type DialogueEnv struct {
	BackendURL     string        `env:"BACKEND_URL" envDefault:"http://localhost:8000/api/v1"`
	CaptureTimeout time.Duration `env:"CAPTURE_TIMEOUT" envDefault:"15s"`
	SpeakTimeout   time.Duration `env:"SPEAK_TIMEOUT" envDefault:"30s"`
	RemoteTimeout  time.Duration `env:"REMOTE_TIMEOUT" envDefault:"20s"`
	TokenFile      string        `env:"TOKEN_FILE,expand" envDefault:"${HOME}/.sonicsavor/token"`
}

func LoadServerEnv() (ServerEnv, error) {
	var cfg ServerEnv
	if err := env.Parse(&cfg); err != nil {
		return ServerEnv{}, fmt.Errorf("failed to parse server environment: %w", err)
	}
	return cfg, nil
}

func LoadDialogueEnv() (DialogueEnv, error) {
	var cfg DialogueEnv
	if err := env.Parse(&cfg); err != nil {
		return DialogueEnv{}, fmt.Errorf("failed to parse dialogue environment: %w", err)
	}
	return cfg, nil
}

// MachineConfig converts the parsed timeouts into a dialogue configuration.
func (d DialogueEnv) MachineConfig() dialogue.Config {
	return dialogue.Config{
		SpeakTimeout:   d.SpeakTimeout,
		CaptureTimeout: d.CaptureTimeout,
		RemoteTimeout:  d.RemoteTimeout,
	}
}
