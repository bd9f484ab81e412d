package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/sign"
	"github.com/ayusman/mudra/internal/store"
)

// hold feeds the same hand to the session for enough ticks to win the
// stability vote, advancing a synthetic clock between ticks.
func hold(t *testing.T, sess *session.Session, hand detector.HandLandmarks, now *time.Time) sign.Token {
	t.Helper()

	for i := 0; i < sign.DefaultBufferSize; i++ {
		*now = now.Add(10 * time.Millisecond)
		if event := sess.Process([]detector.HandLandmarks{hand}, *now); event != nil {
			return event.Token
		}
	}

	t.Fatal("sign was not confirmed within one stability window")
	return sign.TokenNone
}

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	if err := s.Signs().Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	sess := session.New(session.Config{Store: s})

	srv := server.New(server.Config{
		Store:   s,
		Session: sess,
		Events:  server.NewEventsHandler(),
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()
	now := time.Now()

	t.Run("ListSeededSigns", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/signs")
		if err != nil {
			t.Fatalf("list signs error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var response struct {
			Signs []struct {
				Word string `json:"word"`
			} `json:"signs"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if len(response.Signs) != 9 {
			t.Errorf("seeded vocabulary has %d signs, want 9", len(response.Signs))
		}
	})

	t.Run("RecognizeSigns", func(t *testing.T) {
		token := hold(t, sess, detector.HighOpenPalmLandmarks(), &now)
		if token != sign.TokenHello {
			t.Fatalf("high open palm confirmed %q, want %q", token, sign.TokenHello)
		}

		// Wait out the cooldown before the next sign.
		now = now.Add(sign.DefaultCooldown)

		token = hold(t, sess, detector.PointingLandmarks(), &now)
		if token != sign.TokenYou {
			t.Fatalf("pointing confirmed %q, want %q", token, sign.TokenYou)
		}
	})

	t.Run("ReadSentence", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/sentence")
		if err != nil {
			t.Fatalf("get sentence error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var response struct {
			Text         string `json:"text"`
			LastDetected string `json:"last_detected"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if response.Text != "HELLO YOU" {
			t.Errorf("sentence = %q, want 'HELLO YOU'", response.Text)
		}
		if response.LastDetected != "YOU" {
			t.Errorf("last detected = %q, want 'YOU'", response.LastDetected)
		}
	})

	t.Run("SaveSentence", func(t *testing.T) {
		resp, err := client.Post(ts.URL+"/api/sentence/save", "application/json", nil)
		if err != nil {
			t.Fatalf("save error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}

		var response struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if response.Text != "HELLO YOU" {
			t.Errorf("saved text = %q, want 'HELLO YOU'", response.Text)
		}
	})

	t.Run("SaveEmptySentenceFails", func(t *testing.T) {
		// The previous save reset the sentence.
		resp, err := client.Post(ts.URL+"/api/sentence/save", "application/json", nil)
		if err != nil {
			t.Fatalf("save error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
	})

	t.Run("ExportConversation", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/history/export")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body error = %v", err)
		}
		transcript := string(body)
		if !strings.Contains(transcript, "SIGN LANGUAGE - CONVERSATION") {
			t.Errorf("transcript missing banner:\n%s", transcript)
		}
		if !strings.Contains(transcript, "HELLO YOU") {
			t.Errorf("transcript missing saved sentence:\n%s", transcript)
		}
	})

	t.Run("ClearSentence", func(t *testing.T) {
		// Build a fresh sentence, then clear it over HTTP.
		now = now.Add(sign.DefaultCooldown)
		hold(t, sess, detector.ThumbsUpLandmarks(), &now)

		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/sentence", nil)
		if err != nil {
			t.Fatalf("new request error = %v", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("clear error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNoContent)
		}

		if len(sess.Tokens()) != 0 {
			t.Errorf("sentence not cleared: %v", sess.Tokens())
		}
	})
}
