package model

import "errors"

var (
	// ErrUnknownField indicates an update addressed a field the form does not have.
	ErrUnknownField = errors.New("unknown form field")
	// ErrNameRequired indicates the contact name is empty.
	ErrNameRequired = errors.New("name is required")
	// ErrNameTooLong indicates a contact name over MaxNameLength characters.
	ErrNameTooLong = errors.New("name must be at most 255 characters")
	// ErrEmailRequired indicates the contact email is empty.
	ErrEmailRequired = errors.New("email is required")
	// ErrInvalidEmail indicates a malformed contact email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrCompanyRequired indicates the company is empty.
	ErrCompanyRequired = errors.New("company is required")
	// ErrCompanyTooLong indicates a company over MaxNameLength characters.
	ErrCompanyTooLong = errors.New("company must be at most 255 characters")
	// ErrMessageTooLong indicates the message exceeds MaxMessageLength.
	ErrMessageTooLong = errors.New("message is too long")
	// ErrInvalidSubmissionKey indicates a submission key longer than 64 characters.
	ErrInvalidSubmissionKey = errors.New("invalid submission key")
	// ErrInquiryNotFound indicates the requested inquiry does not exist.
	ErrInquiryNotFound = errors.New("inquiry not found")
	// ErrDuplicateInquiry indicates the submission key is already stored.
	ErrDuplicateInquiry = errors.New("inquiry already stored")
)
