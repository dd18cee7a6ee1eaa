package domain

import "time"

type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Phone     string    `json:"phone" gorm:"type:text"`
	Email     string    `json:"email" gorm:"type:text"`
	Address   string    `json:"address" gorm:"type:text"`
	Notes     *string   `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Customer) TableName() string { return "customers" }
