package model

import "time"

// SubmitRequest is the JSON body of POST /api/sponsorships.
type SubmitRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Company string `json:"company" binding:"required,max=255"`
	Message string `json:"message" binding:"max=5000"`
}

// Form converts the request into form state.
func (r *SubmitRequest) Form() InquiryForm {
	return InquiryForm{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Message: r.Message,
	}
}

// SubmissionResult is the outcome of an accepted submit.
type SubmissionResult struct {
	Accepted    bool   `json:"accepted"`
	ReferenceID string `json:"reference_id"`
	Duplicate   bool   `json:"duplicate,omitempty"`
}

// InquiryResponse is the representation returned by GET /api/sponsorships/:id.
type InquiryResponse struct {
	ReferenceID string    `json:"reference_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewInquiryResponse builds the API view of a stored inquiry.
func NewInquiryResponse(i *Inquiry) *InquiryResponse {
	return &InquiryResponse{
		ReferenceID: i.ID,
		Name:        i.Name,
		Email:       i.Email,
		Company:     i.Company,
		Message:     i.Message,
		CreatedAt:   i.CreatedAt,
	}
}
