package models

import "time"

type Trip struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID uint      `gorm:"column:household_id;not null;index" json:"household_id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	Destination string    `gorm:"column:destination;size:255;not null" json:"destination"`
	StartDate   string    `gorm:"column:start_date;size:10;not null" json:"start_date"` // YYYY-MM-DD
	EndDate     string    `gorm:"column:end_date;size:10;not null" json:"end_date"`     // YYYY-MM-DD
	Notes       *string   `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Expenses   []Expense   `gorm:"foreignKey:TripID" json:"expenses,omitempty"`
	Checklists []Checklist `gorm:"foreignKey:TripID" json:"checklists,omitempty"`
}

func (Trip) TableName() string {
	return "trips"
}
