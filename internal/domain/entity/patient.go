package entity

import "time"

// Patient books appointments with doctors
type Patient struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *string    `gorm:"type:varchar(450);uniqueIndex" json:"user_id,omitempty"`
	FirstName   string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(50);not null" json:"last_name"`
	Email       string     `gorm:"type:varchar(100);not null" json:"email"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Address     string     `gorm:"type:varchar(500)" json:"address,omitempty"`
	PhotoURL    string     `gorm:"column:photo_url;type:varchar(200)" json:"photo_url,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
