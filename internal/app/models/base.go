package models

import (
	"fmt"
	"strings"

	"github.com/ozank/collegium/internal/pkg/apperrors"
)

// MaxNameLength is the upper bound for every entity name.
const MaxNameLength = 70

// BaseModel is embedded by every persisted entity: integer identity plus
// a bounded, non-empty display name.
type BaseModel struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:70;not null"`
}

// GetID returns the primary key.
func (b *BaseModel) GetID() int { return b.ID }

// ValidateBase checks the identity and name invariants shared by all entities.
func (b *BaseModel) ValidateBase() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	if len(b.Name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", apperrors.ErrValidationFailed, MaxNameLength)
	}
	return nil
}

// Entity is the constraint satisfied by every persisted model.
type Entity interface {
	GetID() int
}

// Discriminated is implemented by models stored in a shared table and
// distinguished by a type tag column.
type Discriminated interface {
	Discriminator() string
}
