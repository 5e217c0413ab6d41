package models

import "time"

const (
	RoleOwner  = "owner"
	RoleMember = "member"

	MemberStatusPending = "pending"
	MemberStatusActive  = "active"
)

// HouseholdMember is the one real state machine in the app:
// pending (user_id null, token set) -> active (user_id set, immutable after).
type HouseholdMember struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID  uint      `gorm:"column:household_id;not null;index" json:"household_id"`
	UserID       *uint     `gorm:"column:user_id;index" json:"user_id"`
	Role         string    `gorm:"column:role;size:20;not null;default:'member'" json:"role"` // owner | member
	InvitedEmail *string   `gorm:"column:invited_email;size:100" json:"invited_email"`
	InviteToken  string    `gorm:"column:invite_token;size:64;uniqueIndex" json:"-"`
	Status       string    `gorm:"column:status;size:20;not null;default:'pending'" json:"status"` // pending | active
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Household *Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}

func (HouseholdMember) TableName() string {
	return "household_members"
}
