package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sign represents a vocabulary entry stored in the database.
type Sign struct {
	ID          string
	Word        string
	Hands       string // "single" or "double"
	Description string
	CreatedAt   time.Time
}

// SignRepository provides CRUD operations for the sign vocabulary.
type SignRepository struct {
	db *sql.DB
}

// Signs returns the sign repository for this store.
func (s *Store) Signs() *SignRepository {
	return &SignRepository{db: s.db}
}

// defaultSigns is the built-in vocabulary seeded on first run. The
// descriptions double as the text-to-sign reference material.
var defaultSigns = []Sign{
	{Word: "HELLO", Hands: "single", Description: "Open palm raised high, all fingers extended"},
	{Word: "THANK YOU", Hands: "single", Description: "Open palm facing forward"},
	{Word: "PLEASE", Hands: "single", Description: "Open palm turned downward"},
	{Word: "YOU", Hands: "single", Description: "Index finger pointing"},
	{Word: "ME/I", Hands: "single", Description: "Index finger with palm turned sideways"},
	{Word: "PEACE", Hands: "single", Description: "Index and middle fingers extended"},
	{Word: "WATER", Hands: "single", Description: "Index, middle and ring fingers extended"},
	{Word: "YES", Hands: "single", Description: "Thumbs up"},
	{Word: "STOP", Hands: "single", Description: "Closed fist"},
}

// Seed inserts the default vocabulary, skipping words that already exist.
func (r *SignRepository) Seed() error {
	for _, sign := range defaultSigns {
		_, err := r.db.Exec(
			`INSERT OR IGNORE INTO signs (id, word, hands, description, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), sign.Word, sign.Hands, sign.Description, time.Now(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Create inserts a new sign into the vocabulary.
func (r *SignRepository) Create(sign *Sign) error {
	if sign.ID == "" {
		sign.ID = uuid.New().String()
	}
	if sign.Hands == "" {
		sign.Hands = "single"
	}
	sign.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO signs (id, word, hands, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sign.ID, sign.Word, sign.Hands, sign.Description, sign.CreatedAt,
	)
	return err
}

// GetByWord retrieves a sign by its vocabulary word.
func (r *SignRepository) GetByWord(word string) (*Sign, error) {
	sign := &Sign{}

	err := r.db.QueryRow(
		`SELECT id, word, hands, description, created_at
		 FROM signs WHERE word = ?`,
		word,
	).Scan(&sign.ID, &sign.Word, &sign.Hands, &sign.Description, &sign.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sign, nil
}

// List retrieves all signs ordered by word.
func (r *SignRepository) List() ([]*Sign, error) {
	rows, err := r.db.Query(
		`SELECT id, word, hands, description, created_at
		 FROM signs ORDER BY word`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signs []*Sign
	for rows.Next() {
		sign := &Sign{}
		if err := rows.Scan(&sign.ID, &sign.Word, &sign.Hands, &sign.Description, &sign.CreatedAt); err != nil {
			return nil, err
		}
		signs = append(signs, sign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return signs, nil
}

// Delete removes a sign from the vocabulary by its ID.
func (r *SignRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM signs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
