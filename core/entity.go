package core

import "github.com/google/uuid"

// Entity is the transient in-memory handle of an entity
// Valid for the lifetime of one World; never persisted
type Entity uint64

// NoEntity is the zero handle, never allocated by a World
const NoEntity Entity = 0

// PersistentID is a stable identity that survives save and reload
type PersistentID struct {
	uuid.UUID
}

// NewPersistentID allocates a fresh random identity
func NewPersistentID() PersistentID {
	return PersistentID{UUID: uuid.New()}
}

// ParsePersistentID decodes the canonical string form
func ParsePersistentID(s string) (PersistentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PersistentID{}, err
	}
	return PersistentID{UUID: id}, nil
}

// IsZero reports whether the identity was never assigned
func (p PersistentID) IsZero() bool {
	return p.UUID == uuid.Nil
}

// Identity pairs the stable cross-session id with the volatile handle
type Identity struct {
	Transient  Entity
	Persistent PersistentID
}
