package shared

import (
	"time"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetInternalID() *int64
	GetCreatedAt() time.Time
}

// BaseEntity provides common fields for all entities.
// InternalID is nil until the entity is persisted for the first time;
// the repository assigns it on the first Save.
type BaseEntity struct {
	InternalID *int64
	CreatedAt  time.Time
}

// GetInternalID returns the persistence identity, nil when not yet saved
func (e *BaseEntity) GetInternalID() *int64 {
	return e.InternalID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// HasInternalID reports whether the entity has been persisted
func (e *BaseEntity) HasInternalID() bool {
	return e.InternalID != nil
}

// SetInternalID assigns the persistence identity. Repositories call this on
// the first Save; it is not part of entity validation.
func (e *BaseEntity) SetInternalID(id int64) {
	e.InternalID = &id
}

// NewBaseEntity creates a new base entity without a persistence identity
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		CreatedAt: time.Now(),
	}
}
