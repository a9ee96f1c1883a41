// Package model provides domain models, form state transitions and DTOs for
// the team registration module.
package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TeamSize is the declared number of members. Zero means not chosen yet.
type TeamSize int

// Allowed team sizes.
const (
	TeamSizeUnset TeamSize = 0
	TeamSizeTwo   TeamSize = 2
	TeamSizeThree TeamSize = 3
	TeamSizeFour  TeamSize = 4
)

// TeamSizes lists the selectable sizes in display order.
func TeamSizes() []TeamSize {
	return []TeamSize{TeamSizeTwo, TeamSizeThree, TeamSizeFour}
}

// Valid reports whether s is one of the selectable sizes.
func (s TeamSize) Valid() bool {
	return s >= TeamSizeTwo && s <= TeamSizeFour
}

// Label returns the option text shown in the size select.
func (s TeamSize) Label() string {
	return strconv.Itoa(int(s)) + " members"
}

// ParseTeamSize parses a select value. The empty string resets the choice.
func ParseTeamSize(value string) (TeamSize, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TeamSizeUnset, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || !TeamSize(n).Valid() {
		return TeamSizeUnset, ErrInvalidTeamSize
	}
	return TeamSize(n), nil
}

// Role is a member's role in the team. Empty means not chosen yet.
type Role string

// Allowed roles.
const (
	RoleUnset          Role = ""
	RoleDeveloper      Role = "developer"
	RoleDesigner       Role = "designer"
	RoleProductManager Role = "product-manager"
	RoleOther          Role = "other"
)

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleDeveloper, RoleDesigner, RoleProductManager, RoleOther}
}

// Valid reports whether r is one of the selectable roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleDesigner, RoleProductManager, RoleOther:
		return true
	default:
		return false
	}
}

// Label returns the option text shown in the role select.
func (r Role) Label() string {
	switch r {
	case RoleDeveloper:
		return "Developer"
	case RoleDesigner:
		return "Designer"
	case RoleProductManager:
		return "Product Manager"
	case RoleOther:
		return "Other"
	default:
		return ""
	}
}

// ParseRole parses a select value. The empty string resets the choice.
func ParseRole(value string) (Role, error) {
	r := Role(strings.TrimSpace(value))
	if r == RoleUnset || r.Valid() {
		return r, nil
	}
	return RoleUnset, ErrInvalidRole
}

// Top-level form field names accepted by UpdateField.
const (
	FieldTeamName   = "teamName"
	FieldTeamSize   = "teamSize"
	FieldAgreeTerms = "agreeTerms"
)

// Member field names accepted by UpdateMember.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldRole      = "role"
)

// TeamMember is one member row of the registration form.
type TeamMember struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// IsBlank reports whether every editable field is empty.
func (m TeamMember) IsBlank() bool {
	return m.FirstName == "" && m.LastName == "" && m.Email == "" && m.Role == RoleUnset
}

// TeamForm is the in-progress state of the registration form.
// TeamSize and the number of members are edited independently and may disagree.
type TeamForm struct {
	TeamName   string       `json:"team_name"`
	TeamSize   TeamSize     `json:"team_size"`
	AgreeTerms bool         `json:"agree_terms"`
	Members    []TeamMember `json:"members"`
}

// NewMember returns a blank member with a fresh identifier.
func NewMember() TeamMember {
	return TeamMember{ID: uuid.NewString()}
}

// NewForm returns a blank form holding a single blank member.
func NewForm() TeamForm {
	return TeamForm{Members: []TeamMember{NewMember()}}
}

// Clone returns a deep copy of f.
func (f TeamForm) Clone() TeamForm {
	out := f
	if f.Members != nil {
		out.Members = make([]TeamMember, len(f.Members))
		copy(out.Members, f.Members)
	}
	return out
}

// UpdateField returns a copy of form with one top-level field replaced.
func UpdateField(form TeamForm, name, value string) (TeamForm, error) {
	next := form.Clone()

	switch name {
	case FieldTeamName:
		next.TeamName = value
	case FieldTeamSize:
		size, err := ParseTeamSize(value)
		if err != nil {
			return form, err
		}
		next.TeamSize = size
	case FieldAgreeTerms:
		next.AgreeTerms = parseCheckbox(value)
	default:
		return form, ErrUnknownField
	}

	return next, nil
}

// UpdateMember returns a copy of form with one field of the member at index replaced.
func UpdateMember(form TeamForm, index int, field, value string) (TeamForm, error) {
	if index < 0 || index >= len(form.Members) {
		return form, ErrMemberIndexOutOfRange
	}

	next := form.Clone()
	member := &next.Members[index]

	switch field {
	case FieldFirstName:
		member.FirstName = value
	case FieldLastName:
		member.LastName = value
	case FieldEmail:
		member.Email = value
	case FieldRole:
		role, err := ParseRole(value)
		if err != nil {
			return form, err
		}
		member.Role = role
	default:
		return form, ErrUnknownField
	}

	return next, nil
}

// AddMember returns a copy of form with a blank member appended.
// The declared team size does not cap the list.
func AddMember(form TeamForm) TeamForm {
	next := form.Clone()
	next.Members = append(next.Members, NewMember())
	return next
}

// RemoveMember returns a copy of form without the member at index.
// The remaining members keep their relative order.
func RemoveMember(form TeamForm, index int) (TeamForm, error) {
	if index < 0 || index >= len(form.Members) {
		return form, ErrMemberIndexOutOfRange
	}

	next := form.Clone()
	next.Members = make([]TeamMember, 0, len(form.Members)-1)
	for i, m := range form.Members {
		if i != index {
			next.Members = append(next.Members, m)
		}
	}
	return next, nil
}

// RemoveMemberByID removes the member carrying id.
func RemoveMemberByID(form TeamForm, id string) (TeamForm, error) {
	for i, m := range form.Members {
		if m.ID == id {
			return RemoveMember(form, i)
		}
	}
	return form, ErrMemberNotFound
}

// CanRemove reports whether the form offers a remove control for index.
// The first member is never removable from the page.
func CanRemove(index int) bool {
	return index > 0
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
