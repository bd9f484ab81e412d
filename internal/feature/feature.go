// Package feature converts raw hand landmarks into the discrete geometric
// features the sign classifier works with: per-finger extension states,
// palm direction, and vertical hand position.
package feature

import (
	"github.com/ayusman/mudra/internal/detector"
)

// Direction is the coarse palm orientation derived from the wrist-to-knuckle vector.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionLeft    Direction = "left"
	DirectionRight   Direction = "right"
	DirectionForward Direction = "forward"
)

// Position is the coarse vertical placement of the hand in the frame.
type Position string

const (
	PositionHigh   Position = "high"
	PositionMiddle Position = "middle"
	PositionLow    Position = "low"
)

// Finger indices into FingerStates.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerStates holds the extended/curled state of each finger in
// thumb-to-pinky order.
type FingerStates [NumFingers]bool

// ExtendedCount returns how many fingers are extended.
func (f FingerStates) ExtendedCount() int {
	count := 0
	for _, extended := range f {
		if extended {
			count++
		}
	}
	return count
}

// HandFeatures is the extracted feature set for a single hand.
type HandFeatures struct {
	Handedness string
	Fingers    FingerStates
	Palm       Direction
	Position   Position
}

// Bundle aggregates the per-hand features for one tick. NumHands counts
// every hand the detector reported; Hands holds features for the valid
// ones in delivery order. The first hand is authoritative for
// classification.
type Bundle struct {
	NumHands int
	Hands    []HandFeatures
}

// Primary returns the first hand's features, if any.
func (b Bundle) Primary() (HandFeatures, bool) {
	if len(b.Hands) == 0 {
		return HandFeatures{}, false
	}
	return b.Hands[0], true
}

// Config holds the geometric thresholds for feature extraction.
type Config struct {
	// ThumbExtension is the minimum horizontal tip-to-MCP displacement
	// for the thumb to count as extended.
	ThumbExtension float64

	// FingerExtension is the minimum vertical tip-above-PIP margin for
	// the other fingers. Kept lenient to tolerate landmark jitter.
	FingerExtension float64

	// DirectionThreshold is the minimum axis displacement of the
	// wrist-to-knuckle vector before a palm direction is assigned.
	DirectionThreshold float64

	// HighBand and LowBand split the frame into high/middle/low hand
	// positions by wrist height. The wide neutral band between them
	// avoids oscillation at the boundaries.
	HighBand float64
	LowBand  float64
}

// DefaultConfig returns the extraction thresholds used by the recognizer.
func DefaultConfig() Config {
	return Config{
		ThumbExtension:     0.04,
		FingerExtension:    0.02,
		DirectionThreshold: 0.08,
		HighBand:           0.4,
		LowBand:            0.65,
	}
}

// Extractor derives HandFeatures from landmark sets. It is a pure
// function of its input and holds no per-frame state.
type Extractor struct {
	config Config
}

// NewExtractor creates an Extractor with the given thresholds.
func NewExtractor(config Config) *Extractor {
	return &Extractor{config: config}
}

// Extract computes the feature set for one hand.
func (e *Extractor) Extract(hand *detector.HandLandmarks) HandFeatures {
	return HandFeatures{
		Handedness: hand.Handedness,
		Fingers:    e.fingerStates(hand),
		Palm:       e.palmDirection(hand),
		Position:   e.handPosition(hand),
	}
}

// ExtractBundle computes features for every valid hand in delivery
// order. Invalid hands (incomplete observations) are skipped but still
// counted in NumHands.
func (e *Extractor) ExtractBundle(hands []detector.HandLandmarks) Bundle {
	bundle := Bundle{NumHands: len(hands)}
	for i := range hands {
		hand := &hands[i]
		if !hand.Valid() {
			continue
		}
		bundle.Hands = append(bundle.Hands, e.Extract(hand))
	}
	return bundle
}

// fingerStates determines which fingers are extended.
//
// The thumb test uses horizontal tip-to-MCP displacement only, which is
// a known accuracy limitation: it degrades when the hand rotates away
// from an upright pose. It is kept as-is because the classification
// rules were tuned against it.
func (e *Extractor) fingerStates(hand *detector.HandLandmarks) FingerStates {
	var states FingerStates

	thumbTip := hand.Points[detector.ThumbTip]
	thumbMCP := hand.Points[detector.ThumbMCP]
	states[Thumb] = abs(thumbTip.X-thumbMCP.X) > e.config.ThumbExtension

	tips := [4]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	pips := [4]int{detector.IndexPIP, detector.MiddlePIP, detector.RingPIP, detector.PinkyPIP}

	for i := 0; i < 4; i++ {
		tip := hand.Points[tips[i]]
		pip := hand.Points[pips[i]]
		states[Index+i] = tip.Y < pip.Y-e.config.FingerExtension
	}

	return states
}

// palmDirection classifies the wrist-to-knuckle vector. Vertical axes
// are checked before horizontal ones; the ordering is deliberate so a
// diagonal vector resolves to up/down.
func (e *Extractor) palmDirection(hand *detector.HandLandmarks) Direction {
	wrist := hand.Points[detector.Wrist]
	knuckle := hand.Points[detector.MiddleMCP]

	dx := knuckle.X - wrist.X
	dy := knuckle.Y - wrist.Y

	switch {
	case dy < -e.config.DirectionThreshold:
		return DirectionUp
	case dy > e.config.DirectionThreshold:
		return DirectionDown
	case dx < -e.config.DirectionThreshold:
		return DirectionLeft
	case dx > e.config.DirectionThreshold:
		return DirectionRight
	default:
		return DirectionForward
	}
}

// handPosition buckets the wrist height into high/middle/low.
func (e *Extractor) handPosition(hand *detector.HandLandmarks) Position {
	wristY := hand.Points[detector.Wrist].Y

	switch {
	case wristY < e.config.HighBand:
		return PositionHigh
	case wristY > e.config.LowBand:
		return PositionLow
	default:
		return PositionMiddle
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
