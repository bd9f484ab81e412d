package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry represents one saved conversation sentence.
type HistoryEntry struct {
	ID        string
	Text      string
	Mode      string
	CreatedAt time.Time
}

// HistoryRepository provides operations on the conversation history.
type HistoryRepository struct {
	db *sql.DB
}

// History returns the history repository for this store.
func (s *Store) History() *HistoryRepository {
	return &HistoryRepository{db: s.db}
}

// Create inserts a new history entry.
func (r *HistoryRepository) Create(entry *HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Mode == "" {
		entry.Mode = "sign_to_text"
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO history (id, text, mode, created_at)
		 VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Text, entry.Mode, entry.CreatedAt,
	)
	return err
}

// List retrieves all history entries, oldest first.
func (r *HistoryRepository) List() ([]*HistoryEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, text, mode, created_at
		 FROM history ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		entry := &HistoryEntry{}
		if err := rows.Scan(&entry.ID, &entry.Text, &entry.Mode, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Clear removes all history entries.
func (r *HistoryRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM history`)
	return err
}

// Export renders the history as a downloadable conversation transcript.
func (r *HistoryRepository) Export() (string, error) {
	entries, err := r.List()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString("SIGN LANGUAGE - CONVERSATION\n")
	b.WriteString(rule + "\n\n")

	for _, entry := range entries {
		fmt.Fprintf(&b, "[%s] %s\n", entry.CreatedAt.Format("15:04:05"), entry.Text)
	}

	return b.String(), nil
}
