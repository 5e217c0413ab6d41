package models

import "time"

type Household struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Members []HouseholdMember `gorm:"foreignKey:HouseholdID" json:"-"`
	Trips   []Trip            `gorm:"foreignKey:HouseholdID" json:"-"`
}

func (Household) TableName() string {
	return "households"
}
