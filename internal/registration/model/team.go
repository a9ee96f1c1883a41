package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Registration is an accepted team registration.
// Matches the team_registrations table schema.
type Registration struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	SubmissionKey *string   `gorm:"column:submission_key;type:varchar(64);uniqueIndex"`
	TeamName      string    `gorm:"column:team_name;type:varchar(255);not null"`
	TeamKey       string    `gorm:"column:team_key;type:varchar(255);not null;uniqueIndex"`
	TeamSize      int       `gorm:"column:team_size;not null"`
	AgreeTerms    bool      `gorm:"column:agree_terms;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
	Members       []Member  `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Registration) TableName() string {
	return "team_registrations"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *Registration) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// Member is a persisted team member.
// Matches the team_members table schema.
type Member struct {
	ID             string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	RegistrationID string    `gorm:"column:registration_id;type:varchar(36);not null;index"`
	Position       int       `gorm:"column:position;not null"`
	FirstName      string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName       string    `gorm:"column:last_name;type:varchar(100);not null"`
	Email          string    `gorm:"column:email;type:varchar(255);not null"`
	Role           string    `gorm:"column:role;type:varchar(32);not null;index"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "team_members"
}

// TeamKey normalizes a team name for uniqueness checks.
func TeamKey(teamName string) string {
	return strings.ToLower(strings.Join(strings.Fields(teamName), " "))
}
