// Package model provides domain models and DTOs for the sponsorship module.
package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Form field names accepted by UpdateField.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldMessage = "message"
)

// InquiryForm is the in-progress state of the sponsorship inquiry form.
type InquiryForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// UpdateField returns a copy of form with one field replaced.
func UpdateField(form InquiryForm, name, value string) (InquiryForm, error) {
	next := form

	switch name {
	case FieldName:
		next.Name = value
	case FieldEmail:
		next.Email = value
	case FieldCompany:
		next.Company = value
	case FieldMessage:
		next.Message = value
	default:
		return form, ErrUnknownField
	}

	return next, nil
}

var validate = validator.New()

// MaxNameLength bounds the contact name and company, matching their columns.
const MaxNameLength = 255

var nameRule = "max=" + strconv.Itoa(MaxNameLength)

// Validate checks the required fields of an inquiry.
func Validate(form InquiryForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return ErrNameRequired
	}
	if err := validate.Var(strings.TrimSpace(form.Name), nameRule); err != nil {
		return ErrNameTooLong
	}
	if strings.TrimSpace(form.Email) == "" {
		return ErrEmailRequired
	}
	if err := validate.Var(strings.TrimSpace(form.Email), "email,max=255"); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(form.Company) == "" {
		return ErrCompanyRequired
	}
	if err := validate.Var(strings.TrimSpace(form.Company), nameRule); err != nil {
		return ErrCompanyTooLong
	}
	if len(form.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// MaxMessageLength bounds the free-text message.
const MaxMessageLength = 5000

// Inquiry is a stored sponsorship inquiry.
// Matches the sponsor_inquiries table schema.
type Inquiry struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	SubmissionKey *string   `gorm:"column:submission_key;type:varchar(64);uniqueIndex"`
	Name          string    `gorm:"column:name;type:varchar(255);not null"`
	Email         string    `gorm:"column:email;type:varchar(255);not null"`
	Company       string    `gorm:"column:company;type:varchar(255);not null"`
	Message       string    `gorm:"column:message;type:text;not null;default:''"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;index"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for GORM.
func (Inquiry) TableName() string {
	return "sponsor_inquiries"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (i *Inquiry) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return nil
}
