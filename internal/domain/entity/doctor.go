package entity

import "time"

// Doctor owns recurring working hours, ad-hoc availability blocks and the
// appointments booked with them. Inactive doctors are never bookable.
type Doctor struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           *string   `gorm:"type:varchar(450);uniqueIndex" json:"user_id,omitempty"`
	FirstName        string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName         string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Email            string    `gorm:"type:varchar(100);not null" json:"email"`
	PhoneNumber      string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	Biography        string    `gorm:"type:varchar(500)" json:"biography,omitempty"`
	PhotoURL         string    `gorm:"column:photo_url;type:varchar(200)" json:"photo_url,omitempty"`
	SpecializationID int       `gorm:"not null;index" json:"specialization_id"`
	IsActive         bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Specialization     Specialization      `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
	WorkingHours       []WorkingHour       `gorm:"foreignKey:DoctorID" json:"working_hours,omitempty"`
	AvailabilityBlocks []AvailabilityBlock `gorm:"foreignKey:DoctorID" json:"availability_blocks,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
