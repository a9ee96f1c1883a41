package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() TeamForm {
	return TeamForm{
		TeamName:   "Null Pointers",
		TeamSize:   TeamSizeThree,
		AgreeTerms: true,
		Members: []TeamMember{
			{ID: "m1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: RoleDeveloper},
			{ID: "m2", FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Role: RoleProductManager},
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validForm()))

	tests := []struct {
		name   string
		mutate func(f *TeamForm)
		want   error
	}{
		{"blank team name", func(f *TeamForm) { f.TeamName = "   " }, ErrTeamNameRequired},
		{"team name too long", func(f *TeamForm) { f.TeamName = strings.Repeat("n", 400) }, ErrTeamNameTooLong},
		{"first name too long", func(f *TeamForm) { f.Members[0].FirstName = strings.Repeat("a", 300) }, ErrMemberNameTooLong},
		{"last name too long", func(f *TeamForm) { f.Members[1].LastName = strings.Repeat("h", MaxMemberNameLength+1) }, ErrMemberNameTooLong},
		{"size not chosen", func(f *TeamForm) { f.TeamSize = TeamSizeUnset }, ErrTeamSizeRequired},
		{"terms unchecked", func(f *TeamForm) { f.AgreeTerms = false }, ErrTermsNotAccepted},
		{"no members", func(f *TeamForm) { f.Members = nil }, ErrEmptyMembers},
		{"missing first name", func(f *TeamForm) { f.Members[1].FirstName = "" }, ErrIncompleteMember},
		{"missing role", func(f *TeamForm) { f.Members[0].Role = RoleUnset }, ErrIncompleteMember},
		{"bad email", func(f *TeamForm) { f.Members[1].Email = "grace-at-example" }, ErrInvalidEmail},
		{"duplicate email", func(f *TeamForm) { f.Members[1].Email = " ADA@example.com " }, ErrDuplicateMemberEmail},
		{"blank added member", func(f *TeamForm) { *f = AddMember(*f) }, ErrIncompleteMember},
		{
			"more members than size",
			func(f *TeamForm) {
				f.TeamSize = TeamSizeTwo
				f.Members = append(f.Members, TeamMember{
					ID: "m3", FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Role: RoleOther,
				})
			},
			ErrTooManyMembers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			assert.ErrorIs(t, Validate(form), tt.want)
		})
	}
}

func TestValidate_LengthLimits(t *testing.T) {
	form := validForm()
	form.TeamName = strings.Repeat("é", MaxTeamNameLength)
	form.Members[0].FirstName = "  " + strings.Repeat("a", MaxMemberNameLength) + "  "
	form.Members[0].LastName = strings.Repeat("ü", MaxMemberNameLength)

	assert.NoError(t, Validate(form), "limits count characters of the trimmed value")
}

func TestValidate_NamesMemberPosition(t *testing.T) {
	form := validForm()
	form.Members[1].Email = "nope"

	err := Validate(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member 2")
}

func TestTeamKey(t *testing.T) {
	assert.Equal(t, "null pointers", TeamKey("  Null   POINTERS "))
	assert.Equal(t, TeamKey("Null Pointers"), TeamKey("null pointers"))
}

func TestSubmitRequest_Form(t *testing.T) {
	req := SubmitRequest{
		TeamName:   "Null Pointers",
		TeamSize:   TeamSizeTwo,
		AgreeTerms: true,
		Members: []MemberRequest{
			{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: RoleDeveloper},
		},
	}

	form := req.Form()
	require.Len(t, form.Members, 1)
	assert.NotEmpty(t, form.Members[0].ID)
	assert.Equal(t, "Ada", form.Members[0].FirstName)
	assert.Equal(t, TeamSizeTwo, form.TeamSize)
	require.NoError(t, Validate(form))
}
