package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusProcessing RequestStatus = "processing"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusRejected
}

type Request struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	DeclarationID string        `json:"declaration_id"`
	Status        RequestStatus `json:"status"`
	// URL and GenerationDate are set together by the generation step,
	// never one without the other.
	URL            *string    `json:"url,omitempty"`
	GenerationDate *time.Time `json:"generation_date,omitempty"`
	AttendantID    *string    `json:"attendant_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// RequestSummary is the admin-facing view of a request, joined with
// the requester's name and the declaration type.
type RequestSummary struct {
	ID                   string        `json:"id"`
	Declaration          string        `json:"declaration"`
	DeclarationSignature SignatureType `json:"declaration_signature,omitempty"`
	Name                 string        `json:"name"`
	RequestDate          time.Time     `json:"request_date"`
	Status               RequestStatus `json:"status"`
	URL                  string        `json:"url,omitempty"`
	GenerationDate       *time.Time    `json:"generation_date,omitempty"`
}

// UserRequest is the requester-facing view of their own request.
type UserRequest struct {
	ID             string        `json:"id"`
	Declaration    string        `json:"declaration"`
	AttendantName  string        `json:"attendant_name"`
	RequestDate    time.Time     `json:"request_date"`
	Status         RequestStatus `json:"status"`
	GenerationDate *time.Time    `json:"generation_date,omitempty"`
}
