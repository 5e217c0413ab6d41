package models

import "time"

type ChecklistItem struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ChecklistID uint      `gorm:"column:checklist_id;not null;index" json:"checklist_id"`
	Text        string    `gorm:"column:text;size:255;not null" json:"text"`
	Checked     bool      `gorm:"column:checked;not null;default:false" json:"checked"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ChecklistItem) TableName() string {
	return "checklist_items"
}
