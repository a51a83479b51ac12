package models

import (
	"fmt"
	"time"
)

// PortalUser represents a monitored Bitrix24 agent whose calls are scored.
// Rows are inserted on first sight from the portal user directory and updated
// on every subsequent ingestion pass; never deleted.
type PortalUser struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ManagerID int       `json:"manager_id" gorm:"uniqueIndex;not null"`
	Active    bool      `json:"active"`
	FirstName string    `json:"first_name" gorm:"size:64"`
	LastName  string    `json:"last_name" gorm:"size:64"`
	Email     string    `json:"email" gorm:"size:128"`
	Region    *string   `json:"region,omitempty" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for PortalUser
func (PortalUser) TableName() string {
	return "portal_users"
}

// FullName returns "LastName FirstName", the snapshot format stored on calls
func (u *PortalUser) FullName() string {
	return fmt.Sprintf("%s %s", u.LastName, u.FirstName)
}
