package model

import "errors"

var (
	// ErrUnknownField indicates an update addressed a field the form does not have.
	ErrUnknownField = errors.New("unknown form field")
	// ErrMemberIndexOutOfRange indicates a member update or removal outside the list bounds.
	ErrMemberIndexOutOfRange = errors.New("member index out of range")
	// ErrMemberNotFound indicates no member carries the requested id.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidTeamSize indicates a team size outside the selectable options.
	ErrInvalidTeamSize = errors.New("invalid team size")
	// ErrInvalidRole indicates a role outside the selectable options.
	ErrInvalidRole = errors.New("invalid member role")

	// ErrTeamNameRequired indicates the team name is empty.
	ErrTeamNameRequired = errors.New("team name is required")
	// ErrTeamNameTooLong indicates a team name over MaxTeamNameLength characters.
	ErrTeamNameTooLong = errors.New("team name must be at most 255 characters")
	// ErrTeamSizeRequired indicates no team size was chosen.
	ErrTeamSizeRequired = errors.New("team size is required")
	// ErrTermsNotAccepted indicates the terms checkbox is unchecked.
	ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")
	// ErrEmptyMembers indicates the members list is empty.
	ErrEmptyMembers = errors.New("members list cannot be empty")
	// ErrIncompleteMember indicates a member is missing a name or role.
	ErrIncompleteMember = errors.New("member details are incomplete")
	// ErrMemberNameTooLong indicates a member name over MaxMemberNameLength characters.
	ErrMemberNameTooLong = errors.New("member names must be at most 100 characters")
	// ErrInvalidEmail indicates a member email is malformed.
	ErrInvalidEmail = errors.New("invalid member email")
	// ErrDuplicateMemberEmail indicates two members share an email.
	ErrDuplicateMemberEmail = errors.New("member emails must be unique")
	// ErrTooManyMembers indicates more members than the declared team size.
	ErrTooManyMembers = errors.New("more members than the selected team size")

	// ErrTeamExists indicates a team with the same name is already registered.
	ErrTeamExists = errors.New("team already registered")
	// ErrRegistrationNotFound indicates the requested registration does not exist.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrInvalidSubmissionKey indicates a submission key longer than 64 characters.
	ErrInvalidSubmissionKey = errors.New("invalid submission key")
)
