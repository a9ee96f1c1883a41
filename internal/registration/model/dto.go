package model

import "time"

// MemberRequest is one member in a JSON registration request.
type MemberRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Role      Role   `json:"role" binding:"required,oneof=developer designer product-manager other"`
}

// SubmitRequest is the JSON body of POST /api/registrations.
type SubmitRequest struct {
	TeamName   string          `json:"team_name" binding:"required,max=255"`
	TeamSize   TeamSize        `json:"team_size" binding:"required,min=2,max=4"`
	AgreeTerms bool            `json:"agree_terms"`
	Members    []MemberRequest `json:"members" binding:"required,min=1,dive"`
}

// Form converts the request into form state so both entry points share one
// submission path.
func (r *SubmitRequest) Form() TeamForm {
	form := TeamForm{
		TeamName:   r.TeamName,
		TeamSize:   r.TeamSize,
		AgreeTerms: r.AgreeTerms,
		Members:    make([]TeamMember, 0, len(r.Members)),
	}
	for _, m := range r.Members {
		member := NewMember()
		member.FirstName = m.FirstName
		member.LastName = m.LastName
		member.Email = m.Email
		member.Role = m.Role
		form.Members = append(form.Members, member)
	}
	return form
}

// SubmissionResult is the outcome of an accepted submit.
type SubmissionResult struct {
	Accepted    bool   `json:"accepted"`
	ReferenceID string `json:"reference_id"`
	Duplicate   bool   `json:"duplicate,omitempty"`
}

// MemberResponse is a persisted member in API responses.
type MemberResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// RegistrationResponse is the representation returned by GET /api/registrations/:id.
type RegistrationResponse struct {
	ReferenceID string           `json:"reference_id"`
	TeamName    string           `json:"team_name"`
	TeamSize    int              `json:"team_size"`
	Members     []MemberResponse `json:"members"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewRegistrationResponse builds the API view of a stored registration.
func NewRegistrationResponse(r *Registration) *RegistrationResponse {
	resp := &RegistrationResponse{
		ReferenceID: r.ID,
		TeamName:    r.TeamName,
		TeamSize:    r.TeamSize,
		Members:     make([]MemberResponse, 0, len(r.Members)),
		CreatedAt:   r.CreatedAt,
	}
	for _, m := range r.Members {
		resp.Members = append(resp.Members, MemberResponse{
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
			Role:      m.Role,
		})
	}
	return resp
}
