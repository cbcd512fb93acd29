package transport

import (
	dashtransport "smartcaller_backend/internal/dashboard/transport"
)

// Seniority labels produced by title classification.
const (
	SeniorityExec     = "exec"
	SeniorityDirector = "director"
	SeniorityManager  = "manager"
	SeniorityJunior   = "junior"
	SeniorityOther    = "other"
)

// Intent labels produced by free-text classification.
const (
	IntentDemo     = "demo"
	IntentResource = "resource"
	IntentOther    = "other"
)

// PersonaOther is the fallback persona when no title pattern matches.
const PersonaOther = "Other"

// LeadRecord is one raw spreadsheet row. All fields are optional; a missing
// column is an empty string, never an error.
type LeadRecord struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	JobTitle    string
	CompanyName string
	Message     string
	Source      string
	UTMSource   string
	FormName    string
	CreatedAt   string
}

// LeadRecordFromRow builds a LeadRecord from a header-keyed CSV row.
func LeadRecordFromRow(row map[string]string) LeadRecord {
	return LeadRecord{
		FirstName:   row["first_name"],
		LastName:    row["last_name"],
		Email:       row["email"],
		Phone:       row["phone"],
		JobTitle:    row["job_title"],
		CompanyName: row["company_name"],
		Message:     row["message"],
		Source:      row["source"],
		UTMSource:   row["utm_source"],
		FormName:    row["form_name"],
		CreatedAt:   row["created_at"],
	}
}

// LeadRecordsFromRows converts a parsed CSV table into lead records.
func LeadRecordsFromRows(rows []map[string]string) []LeadRecord {
	records := make([]LeadRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, LeadRecordFromRow(row))
	}
	return records
}

// ClassifiedLead is the per-row classification result.
type ClassifiedLead struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Company           string  `json:"company"`
	JobTitle          string  `json:"job_title"`
	Persona           string  `json:"persona"`
	Seniority         string  `json:"seniority"`
	Intent            string  `json:"intent"`
	Score             int     `json:"score"`
	WorkflowSuggested string  `json:"workflow_suggested"`
	Country           *string `json:"country"`
	BusinessEmail     bool    `json:"business_email"`
}

// ImportRequest is the payload of POST /api/leads/import.
type ImportRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ImportResponse is the response of POST /api/leads/import.
type ImportResponse struct {
	Leads   []ClassifiedLead      `json:"leads"`
	Summary dashtransport.Summary `json:"summary"`
}
