package detector

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// BridgeSource implements Source using a Python MediaPipe helper process.
// The helper owns the camera, runs the hand landmarker, and answers each
// request with one JSON line of landmark observations.
type BridgeSource struct {
	config    Config
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	mu        sync.Mutex
	started   bool
	lastUsed  time.Time
	idleTimer *time.Timer
}

// NewBridgeSource creates a new bridge source.
// The helper process is started lazily on the first request.
func NewBridgeSource(config Config) (*BridgeSource, error) {
	scriptPath := findLandmarkScript()
	if scriptPath == "" {
		return nil, fmt.Errorf("landmark_service.py not found")
	}

	return &BridgeSource{
		config: config,
	}, nil
}

// Next requests one tick of observations from the helper process.
func (s *BridgeSource) Next() (*Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStarted(); err != nil {
		return nil, err
	}

	if _, err := s.stdin.Write([]byte("next\n")); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	line, err := s.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Hands       []jsonHand `json:"hands"`
		TimestampMs int64      `json:"timestamp_ms"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	frame := &Frame{
		Hands:     make([]HandLandmarks, 0, len(response.Hands)),
		Timestamp: time.UnixMilli(response.TimestampMs),
	}
	if response.TimestampMs == 0 {
		frame.Timestamp = time.Now()
	}

	for _, h := range response.Hands {
		// Incomplete landmark sets are dropped here; the pipeline sees
		// the tick as "no hand" instead of corrupting feature state.
		if len(h.Points) != NumLandmarks {
			continue
		}
		frame.Hands = append(frame.Hands, h.toHandLandmarks())
	}

	s.lastUsed = time.Now()
	s.resetIdleTimer()

	return frame, nil
}

// Close shuts down the helper process.
func (s *BridgeSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown()
}

func (s *BridgeSource) ensureStarted() error {
	if s.started {
		return nil
	}

	scriptPath := findLandmarkScript()
	if scriptPath == "" {
		return fmt.Errorf("landmark_service.py not found")
	}

	// Use virtual environment Python if available
	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	s.cmd = exec.Command(pythonPath, scriptPath,
		"--camera", strconv.Itoa(s.config.CameraID),
		"--max-hands", strconv.Itoa(s.config.MaxHands),
		"--min-confidence", strconv.FormatFloat(s.config.MinConfidence, 'f', -1, 64),
	)

	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := s.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging
	s.cmd.Stderr = os.Stderr

	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("start landmark service: %w", err)
	}

	s.stdin = stdin
	s.stdout = bufio.NewReader(stdout)
	s.started = true
	s.lastUsed = time.Now()

	return nil
}

func (s *BridgeSource) shutdown() error {
	if !s.started {
		return nil
	}

	if s.idleTimer != nil {
		s.idleTimer.Stop()
		s.idleTimer = nil
	}

	if s.stdin != nil {
		s.stdin.Close()
	}

	err := s.cmd.Wait()
	s.started = false
	s.cmd = nil
	s.stdin = nil
	s.stdout = nil

	return err
}

func (s *BridgeSource) resetIdleTimer() {
	if s.idleTimer != nil {
		s.idleTimer.Stop()
	}
	s.idleTimer = time.AfterFunc(30*time.Second, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.shutdown()
	})
}

func findLandmarkScript() string {
	// Get executable directory
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/landmark_service.py",
		"../scripts/landmark_service.py",
		filepath.Join(execDir, "scripts/landmark_service.py"),
		filepath.Join(os.Getenv("HOME"), ".mudra/scripts/landmark_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
// It checks for venv/bin/python relative to the project directory.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		"../../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".mudra/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand represents the JSON structure from the Python service.
type jsonHand struct {
	Points     []jsonPoint `json:"points"`
	Handedness string      `json:"handedness"`
	Score      float64     `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (h jsonHand) toHandLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: h.Handedness,
		Score:      h.Score,
	}

	for i := 0; i < NumLandmarks && i < len(h.Points); i++ {
		lm.Points[i] = Point3D{
			X: h.Points[i].X,
			Y: h.Points[i].Y,
			Z: h.Points[i].Z,
		}
	}

	return lm
}
