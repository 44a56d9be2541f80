package domain

import "time"

type SignatureType string

const (
	SignatureTypeDirector  SignatureType = "director"
	SignatureTypeRequester SignatureType = "requester"
)

// Declaration is a reusable document template. The catalog that manages
// these records lives outside this service; we only read them.
type Declaration struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	Footer        string        `json:"footer"`
	SignatureType SignatureType `json:"signature_type"`
	IsActive      bool          `json:"is_active"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
