// Package model provides data transfer objects for statistics module.
package model

// RoleCount is the number of registered members with a role.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// SizeCount is the number of registered teams of a declared size.
type SizeCount struct {
	TeamSize int `json:"team_size"`
	Count    int `json:"count"`
}

// Totals holds the plain row counts.
type Totals struct {
	Teams            int `json:"teams"`
	Members          int `json:"members"`
	SponsorInquiries int `json:"sponsor_inquiries"`
}

// StatisticsResponse represents response for GET /api/statistics.
type StatisticsResponse struct {
	Totals
	MembersByRole []RoleCount `json:"members_by_role"`
	TeamsBySize   []SizeCount `json:"teams_by_size"`
}
