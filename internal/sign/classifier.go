package sign

import (
	"github.com/ayusman/mudra/internal/feature"
)

// Rule is one classification predicate. Match inspects the primary
// hand's features and decides whether this rule produces a token.
type Rule struct {
	Name  string
	Match func(hand feature.HandFeatures, extended int) (Token, bool)
}

// Classifier maps a feature bundle to a sign token by evaluating an
// ordered rule list. The first matching rule wins, which makes rule
// priority explicit: overlapping configurations resolve to whichever
// rule appears first.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier with the default rule set.
func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// Rules returns the ordered rule list, primarily for inspection in tests.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify returns the token for the bundle's primary hand, or
// TokenNone when no hand is present or the configuration is ambiguous.
// An ambiguous configuration is a valid steady state, not an error.
func (c *Classifier) Classify(bundle feature.Bundle) Token {
	hand, ok := bundle.Primary()
	if !ok {
		return TokenNone
	}

	extended := hand.Fingers.ExtendedCount()

	for _, rule := range c.rules {
		if token, matched := rule.Match(hand, extended); matched {
			return token
		}
	}

	return TokenNone
}

// DefaultRules returns the built-in sign vocabulary rules in priority
// order. The me-or-you rule is evaluated before the peace rule on
// purpose: an index+middle hand turned sideways reads as ME/I, matching
// the behavior the vocabulary was tuned against.
func DefaultRules() []Rule {
	return []Rule{
		{
			// Open palm family: four or more fingers extended. Position
			// is checked before palm direction, and HELLO is the
			// fallback, so an open palm always classifies.
			Name: "open-palm",
			Match: func(hand feature.HandFeatures, extended int) (Token, bool) {
				if extended < 4 {
					return TokenNone, false
				}
				switch {
				case hand.Position == feature.PositionHigh:
					return TokenHello, true
				case hand.Palm == feature.DirectionForward:
					return TokenThankYou, true
				case hand.Palm == feature.DirectionDown:
					return TokenPlease, true
				default:
					return TokenHello, true
				}
			},
		},
		{
			Name: "pointing",
			Match: func(hand feature.HandFeatures, extended int) (Token, bool) {
				if hand.Fingers[feature.Index] && extended == 1 {
					return TokenYou, true
				}
				return TokenNone, false
			},
		},
		{
			Name: "self-reference",
			Match: func(hand feature.HandFeatures, extended int) (Token, bool) {
				if hand.Fingers[feature.Index] && extended <= 2 &&
					(hand.Palm == feature.DirectionLeft || hand.Palm == feature.DirectionRight) {
					return TokenMe, true
				}
				return TokenNone, false
			},
		},
		{
			Name: "peace",
			Match: func(hand feature.HandFeatures, extended int) (Token, bool) {
				if hand.Fingers[feature.Index] && hand.Fingers[feature.Middle] && extended == 2 {
					return TokenPeace, true
				}
				return TokenNone, false
			},
		},
		{
			Name: "three-fingers",
			Match: func(hand feature.HandFeatures, extended int) (Token, bool) {
				if hand.Fingers[feature.Index] && hand.Fingers[feature.Middle] &&
					hand.Fingers[feature.Ring] && extended == 3 {
					return TokenWater, true
				}
				return TokenNone, false
			},
		},
		{
			Name: "thumbs-up",
			Match: func(hand feature.HandFeatures, extended int) (Token, bool) {
				if hand.Fingers[feature.Thumb] && extended == 1 {
					return TokenYes, true
				}
				return TokenNone, false
			},
		},
		{
			Name: "fist",
			Match: func(hand feature.HandFeatures, extended int) (Token, bool) {
				if extended == 0 {
					return TokenStop, true
				}
				return TokenNone, false
			},
		},
	}
}
