// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package history journals teleport completion records in a key-value
// database, keyed by record ID.
package history

import (
	"github.com/luxfi/database"

	"github.com/luxfi/teleporter/teleport"
)

// Journal persists completion records. It implements teleport.Recorder.
type Journal struct {
	db database.Database
}

// NewJournal creates a journal over db.
func NewJournal(db database.Database) *Journal {
	return &Journal{db: db}
}

// Record stores the completion record under its ID.
func (j *Journal) Record(ev *teleport.Event) error {
	return j.db.Put(ev.ID[:], ev.Encode())
}

// Get returns the record with the given ID, or database.ErrNotFound.
func (j *Journal) Get(id [32]byte) (*teleport.Event, error) {
	data, err := j.db.Get(id[:])
	if err != nil {
		return nil, err
	}
	return teleport.DecodeEvent(data)
}

// Has reports whether a record with the given ID exists.
func (j *Journal) Has(id [32]byte) (bool, error) {
	return j.db.Has(id[:])
}
