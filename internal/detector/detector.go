package detector

// Source defines the interface for hand-landmark source implementations.
type Source interface {
	// Next returns the landmark observations for the next tick.
	// A frame with no hands is a valid result, not an error.
	Next() (*Frame, error)

	// Close releases any resources held by the source.
	Close() error
}

// Config holds configuration options for landmark sources.
type Config struct {
	// CameraID selects the capture device used by the upstream detector.
	CameraID int

	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		CameraID:      0,
		MaxHands:      2,
		MinConfidence: 0.5,
	}
}
