// Package detector provides hand-landmark source interfaces and types for
// sign recognition.
package detector

import "time"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in space with x, y, z coordinates.
// X and Y are normalized image coordinates; Z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks for one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Valid reports whether the landmark set carries detection confidence.
// Hands arriving without a score are incomplete observations and are
// treated as "no hand" by the pipeline rather than extracted.
func (h *HandLandmarks) Valid() bool {
	return h != nil && h.Score > 0
}

// Frame is one tick of upstream observations: zero or more hands plus the
// capture timestamp. An empty Hands slice is a valid "no hand" tick.
type Frame struct {
	Hands     []HandLandmarks `json:"hands"`
	Timestamp time.Time       `json:"timestamp"`
}
