package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyMember binds a resident to a household with a relation to the head
// (anggota keluarga). A resident appears at most once per household.
type FamilyMember struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	HouseholdID string    `gorm:"type:char(36);not null;uniqueIndex:idx_household_resident" json:"household_id"`
	ResidentID  string    `gorm:"type:char(36);not null;uniqueIndex:idx_household_resident" json:"resident_id"`
	Relation    string    `gorm:"type:varchar(30);not null" json:"relation"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}

// BeforeCreate assigns the identifier before a membership row is inserted
func (m *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
