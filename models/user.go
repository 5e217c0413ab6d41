package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash *string   `gorm:"size:255" json:"-"` // null for Google-only accounts
	GoogleID     *string   `gorm:"size:100;index" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Memberships []HouseholdMember `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
