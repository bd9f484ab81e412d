package sign

// Buffer smooths the per-frame candidate stream with a sliding-window
// majority vote. It keeps the last N candidates including empty ones;
// once the winner of the window is a real token with at least the
// consensus count, the token is promoted and the whole window is
// dropped so residual votes cannot re-trigger immediately.
type Buffer struct {
	slots     []Token
	size      int
	consensus int
}

// Buffer defaults.
const (
	DefaultBufferSize = 5
	DefaultConsensus  = 3
)

// NewBuffer creates a Buffer holding up to size candidates that
// promotes a token once it has consensus identical votes in the window.
func NewBuffer(size, consensus int) *Buffer {
	return &Buffer{
		slots:     make([]Token, 0, size),
		size:      size,
		consensus: consensus,
	}
}

// Push appends a candidate, evicting the oldest entry when the window
// is full, and reports the promoted token if the vote passes. When the
// window's most frequent candidate is TokenNone no promotion happens
// and the window is left as-is, still subject to eviction on the next
// push.
func (b *Buffer) Push(candidate Token) (Token, bool) {
	if len(b.slots) >= b.size {
		copy(b.slots, b.slots[1:])
		b.slots = b.slots[:b.size-1]
	}
	b.slots = append(b.slots, candidate)

	if len(b.slots) < b.consensus {
		return TokenNone, false
	}

	winner, count := b.majority()
	if winner == TokenNone || count < b.consensus {
		return TokenNone, false
	}

	// Full clear, not an eviction: leftover votes for the promoted
	// token must not count toward the next window.
	b.slots = b.slots[:0]
	return winner, true
}

// majority returns the most frequent candidate in the window. Ties are
// broken by first-insertion order, so the earliest-seen candidate wins.
func (b *Buffer) majority() (Token, int) {
	var winner Token
	best := 0

	for i, candidate := range b.slots {
		count := 1
		seen := false
		for j := 0; j < i; j++ {
			if b.slots[j] == candidate {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		for j := i + 1; j < len(b.slots); j++ {
			if b.slots[j] == candidate {
				count++
			}
		}
		if count > best {
			winner = candidate
			best = count
		}
	}

	return winner, best
}

// Len returns the number of buffered candidates.
func (b *Buffer) Len() int {
	return len(b.slots)
}

// Reset drops all buffered candidates.
func (b *Buffer) Reset() {
	b.slots = b.slots[:0]
}
