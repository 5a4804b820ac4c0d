package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pocketpet/internal/pet"
)

// Storage keys, one row per durable field. Reading and writing each
// field independently is what lets a partial record default field by
// field, the same contract the device's flash namespace gives.
const (
	keyHunger    = "hunger"
	keyHappiness = "happiness"
	keyEnergy    = "energy"
	keyAgeDays   = "age_days"
)

// SQLiteStore keeps each durable field as its own key/value row.
type SQLiteStore struct {
	conn *sqlx.DB
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pet_state (
		key   TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);`
	_, err := s.conn.Exec(schema)
	return err
}

// Load reads whatever keys exist. No rows at all means first run.
func (s *SQLiteStore) Load() (*pet.Record, error) {
	rows, err := s.conn.Queryx(`SELECT key, value FROM pet_state`)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	defer rows.Close()

	vals := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan state row: %w", err)
		}
		vals[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read state rows: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}

	rec := &pet.Record{}
	if v, ok := vals[keyHunger]; ok {
		rec.Hunger = &v
	}
	if v, ok := vals[keyHappiness]; ok {
		rec.Happiness = &v
	}
	if v, ok := vals[keyEnergy]; ok {
		rec.Energy = &v
	}
	if v, ok := vals[keyAgeDays]; ok {
		rec.AgeDays = &v
	}
	return rec, nil
}

// Save upserts every present field in one transaction.
func (s *SQLiteStore) Save(rec pet.Record) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	fields := map[string]*int{
		keyHunger:    rec.Hunger,
		keyHappiness: rec.Happiness,
		keyEnergy:    rec.Energy,
		keyAgeDays:   rec.AgeDays,
	}
	for key, val := range fields {
		if val == nil {
			continue
		}
		_, err := tx.Exec(`
			INSERT INTO pet_state (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, *val)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
