package models

// Household represents a family card (kartu keluarga) registration
type Household struct {
	BaseModel
	KKNumber string `gorm:"type:char(16);uniqueIndex;not null" json:"kk_number"`
	Address  string `gorm:"type:varchar(200);not null" json:"address"`
	RT       string `gorm:"type:varchar(3);not null" json:"rt"`
	RW       string `gorm:"type:varchar(3);not null;default:'008'" json:"rw"`
	// HeadID references the resident holding the Kepala Keluarga relation.
	HeadID string `gorm:"type:char(36);not null" json:"head_id"`
	// MemberCount mirrors the number of stored membership rows. It is kept in
	// sync by the household workflow, not recomputed on read.
	MemberCount int `gorm:"not null;default:0" json:"member_count"`

	// Relations
	Head    *Resident      `gorm:"foreignKey:HeadID" json:"head,omitempty"`
	Members []FamilyMember `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
}
