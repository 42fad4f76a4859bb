package models

// Swagger / API docs: common request and response models referenced by handler annotations

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error   string   `json:"error" example:"Invalid input"`
	Details string   `json:"details,omitempty" example:""`
	Fields  []string `json:"fields,omitempty"`
}

// CreateSessionResponse is returned when a new valuation form is started.
type CreateSessionResponse struct {
	Message   string     `json:"message" example:"Valuation form created successfully"`
	SessionID string     `json:"session_id" example:"4b1f0d9e-2c55-4a8e-9a43-1f7a4d1b2e10"`
	EditToken string     `json:"edit_token" example:"eyJhbGc..."`
	ExpiresAt int64      `json:"expires_at" example:"1767225600"`
	Record    FormRecord `json:"record"`
}

// EventResponse carries the section that changed plus the whole derived record.
type EventResponse struct {
	Section string     `json:"section" example:"landDetails"`
	Data    any        `json:"data"`
	Record  FormRecord `json:"record"`
	Row     *int       `json:"row,omitempty"`
	SubRow  *int       `json:"sub_row,omitempty"`
}

// SubmitResponse is returned after the record has been handed to the submission sink.
type SubmitResponse struct {
	Message      string `json:"message" example:"Valuation submitted successfully"`
	SubmissionID string `json:"submission_id" example:"9c3ad1a2-55d1-4c36-8a36-4c86f2f1e0b7"`
}

// GeoSelectRequest is the body of the stateless cascading-selection endpoint.
type GeoSelectRequest struct {
	Selection GeoSelection `json:"selection"`
	Level     string       `json:"level" binding:"required" example:"district"`
	Value     string       `json:"value" example:"Hyderabad"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	DBStatus string `json:"db_status" example:"disabled"`
	Sessions int    `json:"sessions" example:"3"`
}
