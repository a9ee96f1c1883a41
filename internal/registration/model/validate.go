package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Column limits of team_registrations and team_members.
const (
	MaxTeamNameLength   = 255
	MaxMemberNameLength = 100
)

// Validate checks that form is complete enough to be accepted.
// Errors wrap the sentinels above and name the offending member position.
func Validate(form TeamForm) error {
	if strings.TrimSpace(form.TeamName) == "" {
		return ErrTeamNameRequired
	}
	if err := validate.Var(strings.TrimSpace(form.TeamName), maxLen(MaxTeamNameLength)); err != nil {
		return ErrTeamNameTooLong
	}
	if !form.TeamSize.Valid() {
		return ErrTeamSizeRequired
	}
	if !form.AgreeTerms {
		return ErrTermsNotAccepted
	}
	if len(form.Members) == 0 {
		return ErrEmptyMembers
	}

	seen := make(map[string]int, len(form.Members))
	for i, m := range form.Members {
		pos := i + 1
		if strings.TrimSpace(m.FirstName) == "" || strings.TrimSpace(m.LastName) == "" || !m.Role.Valid() {
			return fmt.Errorf("member %d: %w", pos, ErrIncompleteMember)
		}
		if validate.Var(strings.TrimSpace(m.FirstName), maxLen(MaxMemberNameLength)) != nil ||
			validate.Var(strings.TrimSpace(m.LastName), maxLen(MaxMemberNameLength)) != nil {
			return fmt.Errorf("member %d: %w", pos, ErrMemberNameTooLong)
		}
		email := NormalizeEmail(m.Email)
		if err := validate.Var(email, "required,email,max=255"); err != nil {
			return fmt.Errorf("member %d: %w", pos, ErrInvalidEmail)
		}
		if prev, ok := seen[email]; ok {
			return fmt.Errorf("members %d and %d: %w", prev, pos, ErrDuplicateMemberEmail)
		}
		seen[email] = pos
	}

	if len(form.Members) > int(form.TeamSize) {
		return fmt.Errorf("%d members for a team of %d: %w", len(form.Members), form.TeamSize, ErrTooManyMembers)
	}

	return nil
}

func maxLen(n int) string {
	return "max=" + strconv.Itoa(n)
}

// NormalizeEmail trims and lowercases an address for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
