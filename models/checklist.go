package models

import "time"

type Checklist struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TripID    uint      `gorm:"column:trip_id;not null;index" json:"trip_id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Items []ChecklistItem `gorm:"foreignKey:ChecklistID" json:"items,omitempty"`
}

func (Checklist) TableName() string {
	return "checklists"
}
