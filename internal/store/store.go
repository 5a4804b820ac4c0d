// Package store persists the pet's durable record. The simulator never
// touches storage itself; the host saves whenever the tick loop reports
// a save is due, and a failed save just waits for the next cadence.
package store

import "pocketpet/internal/pet"

// Store loads and saves the durable pet record.
//
// Load returns a nil record on first run (nothing saved yet), which is
// not an error. Records may be partial; callers default missing fields
// individually.
type Store interface {
	Load() (*pet.Record, error)
	Save(pet.Record) error
	Close() error
}
