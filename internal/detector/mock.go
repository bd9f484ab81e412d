package detector

import "time"

// MockSource is a test implementation of the Source interface.
// It allows tests to control the delivered frames.
type MockSource struct {
	hands []HandLandmarks
	err   error
}

// NewMockSource creates a new MockSource instance.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// SetHands sets the hands that will be returned by Next.
func (m *MockSource) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Next.
func (m *MockSource) SetError(err error) {
	m.err = err
}

// Next returns a frame with the pre-configured hands or error.
func (m *MockSource) Next() (*Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &Frame{Hands: m.hands, Timestamp: time.Now()}, nil
}

// Close is a no-op for the mock source.
func (m *MockSource) Close() error {
	return nil
}

// FistLandmarks returns a preset HandLandmarks with all fingers curled
// and the thumb tucked against the palm.
func FistLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist at mid-frame height
	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.55, Z: 0.0}

	// Thumb tucked (tip close to MCP horizontally)
	landmarks.Points[ThumbCMC] = Point3D{X: 0.52, Y: 0.52, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.53, Y: 0.50, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.54, Y: 0.49, Z: -0.01}
	landmarks.Points[ThumbTip] = Point3D{X: 0.55, Y: 0.48, Z: -0.02}

	// Index finger curled (tip folded back below the PIP)
	landmarks.Points[IndexMCP] = Point3D{X: 0.54, Y: 0.46, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.54, Y: 0.40, Z: -0.02}
	landmarks.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.42, Z: -0.04}
	landmarks.Points[IndexTip] = Point3D{X: 0.51, Y: 0.44, Z: -0.03}

	// Middle finger curled
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.48, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.40, Z: -0.02}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.42, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: 0.47, Y: 0.44, Z: -0.03}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: 0.46, Y: 0.46, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.46, Y: 0.40, Z: -0.02}
	landmarks.Points[RingDIP] = Point3D{X: 0.44, Y: 0.42, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.43, Y: 0.44, Z: -0.03}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.47, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.41, Z: -0.02}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.43, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.39, Y: 0.45, Z: -0.03}

	return landmarks
}

// extendFinger straightens a finger chain so the tip sits well above the PIP.
func extendFinger(h *HandLandmarks, pip, dip, tip int) {
	base := h.Points[pip]
	h.Points[dip] = Point3D{X: base.X, Y: base.Y - 0.06, Z: base.Z}
	h.Points[tip] = Point3D{X: base.X, Y: base.Y - 0.12, Z: base.Z}
}

// extendThumb pushes the thumb tip away from its MCP horizontally.
func extendThumb(h *HandLandmarks) {
	mcp := h.Points[ThumbMCP]
	h.Points[ThumbIP] = Point3D{X: mcp.X + 0.06, Y: mcp.Y - 0.02, Z: mcp.Z}
	h.Points[ThumbTip] = Point3D{X: mcp.X + 0.10, Y: mcp.Y - 0.04, Z: mcp.Z}
}

// OpenPalmLandmarks returns a preset HandLandmarks with all fingers
// extended, the hand at mid-frame height, and the palm facing forward.
func OpenPalmLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	extendThumb(&landmarks)
	extendFinger(&landmarks, IndexPIP, IndexDIP, IndexTip)
	extendFinger(&landmarks, MiddlePIP, MiddleDIP, MiddleTip)
	extendFinger(&landmarks, RingPIP, RingDIP, RingTip)
	extendFinger(&landmarks, PinkyPIP, PinkyDIP, PinkyTip)
	return landmarks
}

// HighOpenPalmLandmarks returns an open palm raised into the upper part
// of the frame.
func HighOpenPalmLandmarks() HandLandmarks {
	landmarks := OpenPalmLandmarks()
	for i := range landmarks.Points {
		landmarks.Points[i].Y -= 0.25
	}
	return landmarks
}

// PointingLandmarks returns a hand with only the index finger extended.
func PointingLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	extendFinger(&landmarks, IndexPIP, IndexDIP, IndexTip)
	return landmarks
}

// PeaceLandmarks returns a hand with index and middle fingers extended.
func PeaceLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	extendFinger(&landmarks, IndexPIP, IndexDIP, IndexTip)
	extendFinger(&landmarks, MiddlePIP, MiddleDIP, MiddleTip)
	return landmarks
}

// ThreeFingerLandmarks returns a hand with index, middle and ring
// fingers extended.
func ThreeFingerLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	extendFinger(&landmarks, IndexPIP, IndexDIP, IndexTip)
	extendFinger(&landmarks, MiddlePIP, MiddleDIP, MiddleTip)
	extendFinger(&landmarks, RingPIP, RingDIP, RingTip)
	return landmarks
}

// ThumbsUpLandmarks returns a hand with only the thumb extended.
func ThumbsUpLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	extendThumb(&landmarks)
	return landmarks
}
