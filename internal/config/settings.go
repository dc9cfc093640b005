package config

import (
	"errors"
	"time"
)

// Settings holds process-level configuration read from the environment.
type Settings struct {
	Seed       int64  // Random seed for spawn positions and star layout
	LogLevel   string // debug, info, warn, error
	LogFile    string // Optional log destination for terminal hosts
	MotionAddr string // Listen address for the phone motion bridge; empty disables it
	SSHHost    string
	SSHPort    string
	SSHHostKey string

	SSHIdleTimeout time.Duration // Zero disables the idle cutoff
}

// LoadSettings reads Settings from the environment, after loading an optional .env file.
// Parse failures are joined and returned together with the best-effort settings.
func LoadSettings() (Settings, error) {
	var errs []error
	if err := LoadDotEnv(); err != nil {
		errs = append(errs, err)
	}

	seed, err := GetEnvInt("SHOOT_SEED", 0)
	if err != nil {
		errs = append(errs, err)
	}
	if seed == 0 {
		seed, err = GetEnvInt("GAME_RAND_SEED", 0)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	idle, err := GetEnvDuration("SSH_IDLE_TIMEOUT", 10*time.Minute)
	if err != nil {
		errs = append(errs, err)
	}

	s := Settings{
		Seed:       seed,
		LogLevel:   GetEnv("SHOOT_LOG_LEVEL", "info"),
		LogFile:    GetEnv("SHOOT_LOG_FILE", ""),
		MotionAddr: GetEnv("SHOOT_MOTION_ADDR", ""),
		SSHHost:    GetEnv("SSH_HOST", "::"),
		SSHPort:    GetEnv("SSH_PORT", "2222"),
		SSHHostKey: GetEnv("SSH_HOST_KEY", "/app/keys/host_key"),

		SSHIdleTimeout: idle,
	}
	return s, errors.Join(errs...)
}
