package session

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// DefaultTickInterval is the frame polling cadence.
const DefaultTickInterval = 10 * time.Millisecond

// Runner drives the recognition pipeline: it polls the landmark source
// on a fixed cadence and feeds each frame through the session. One
// frame is fully processed before the next is read, preserving the
// window and cooldown invariants.
type Runner struct {
	source   detector.Source
	session  *Session
	interval time.Duration

	mu      sync.Mutex
	stopCh  chan struct{}
	done    chan struct{}
	stopped bool
}

// NewRunner creates a Runner polling the source at the given interval.
func NewRunner(source detector.Source, session *Session, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Runner{
		source:   source,
		session:  session,
		interval: interval,
	}
}

// Start begins the polling loop. Starting an already-running or
// stopped Runner is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stop closes the landmark source, so a stopped Runner cannot be
	// restarted; build a new Runner instead.
	if r.stopCh != nil || r.stopped {
		return
	}

	r.stopCh = make(chan struct{})
	r.done = make(chan struct{})
	go r.run(r.stopCh, r.done)

	log.Println("Recognition pipeline started")
}

// Stop halts the polling loop and releases the landmark source. The
// Runner is finished after Stop and will not start again. Accumulated
// session state is kept; stopping is not a reset.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopCh == nil {
		return
	}

	close(r.stopCh)
	<-r.done
	r.stopCh = nil
	r.done = nil
	r.stopped = true

	if err := r.source.Close(); err != nil {
		log.Printf("Error closing landmark source: %v", err)
	}

	log.Println("Recognition pipeline stopped")
}

func (r *Runner) run(stopCh, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := r.source.Next()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			if event := r.session.Process(frame.Hands, time.Now()); event != nil {
				log.Printf("Sign confirmed: %s", event.Token)
			}
		}
	}
}
