// Package config defines the service configuration and its loading rules.
package config

import "time"

// Config contains process configuration. Every tunable the recognizer
// depends on lives here rather than as a hard-coded constant.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database location. Empty means the default
	// under the user's home directory.
	DBPath string `koanf:"db_path"`

	// CameraID selects the capture device for the landmark bridge.
	CameraID int `koanf:"camera_id"`

	// TickIntervalMS is the frame polling cadence in milliseconds.
	TickIntervalMS int `koanf:"tick_interval_ms"`

	// CooldownMS is the refractory period between emissions in milliseconds.
	CooldownMS int `koanf:"cooldown_ms"`

	// BufferSize is the stability window length in frames.
	BufferSize int `koanf:"buffer_size"`

	// Consensus is the vote count required to confirm a token.
	// Tunable independently of BufferSize.
	Consensus int `koanf:"consensus"`

	// ThumbExtension is the thumb extension displacement threshold.
	ThumbExtension float64 `koanf:"thumb_extension"`

	// FingerExtension is the finger extension margin threshold.
	FingerExtension float64 `koanf:"finger_extension"`

	// DirectionThreshold is the palm direction axis threshold.
	DirectionThreshold float64 `koanf:"direction_threshold"`

	// HighBand and LowBand split the frame into hand position bands.
	HighBand float64 `koanf:"high_band"`
	LowBand  float64 `koanf:"low_band"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:               ":8080",
		DBPath:             "",
		CameraID:           0,
		TickIntervalMS:     10,
		CooldownMS:         1500,
		BufferSize:         5,
		Consensus:          3,
		ThumbExtension:     0.04,
		FingerExtension:    0.02,
		DirectionThreshold: 0.08,
		HighBand:           0.4,
		LowBand:            0.65,
	}
}

// Cooldown returns the cooldown as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// TickInterval returns the polling cadence as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}
