package entity

// Specialization is a medical branch doctors are grouped by
type Specialization struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}
