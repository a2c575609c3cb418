package models

// DeathReport represents a death registration (laporan kematian)
type DeathReport struct {
	BaseModel
	// ResidentID links the report to a registered resident; empty for
	// unlinked records of non-registered decedents.
	ResidentID string `gorm:"type:char(36)" json:"resident_id,omitempty"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	NIK        string `gorm:"type:char(16)" json:"nik,omitempty"` // snapshot at registration time
	DeathDate  string `gorm:"type:varchar(10);not null" json:"death_date"`
	DeathPlace string `gorm:"type:varchar(100);not null" json:"death_place"`
	Cause      string `gorm:"type:varchar(200)" json:"cause,omitempty"`
	Notes      string `gorm:"type:varchar(500)" json:"notes,omitempty"`
}
