package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user (caseworker or reviewer).
// Capabilities are stored as a comma-separated text column.
type User struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	Email        string       `db:"email" json:"email"`
	PasswordHash string       `db:"password_hash" json:"-"`
	FullName     string       `db:"full_name" json:"full_name"`
	Capabilities Capabilities `db:"capabilities" json:"capabilities"`
	IsActive     bool         `db:"is_active" json:"is_active"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// HasCapability reports whether the user holds the given capability.
func (u *User) HasCapability(c Capability) bool {
	for _, have := range u.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Case represents an appeal case being processed end to end.
//
// Assignment and flow routing are owned by the case-workflow layer; this
// backend only reads case state to classify it for access decisions.
type Case struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	CaseNumber    string     `db:"case_number" json:"case_number"`
	CaseworkerID  *uuid.UUID `db:"caseworker_id" json:"caseworker_id,omitempty"`
	CoSignerID    *uuid.UUID `db:"co_signer_id" json:"co_signer_id,omitempty"`
	ReviewerID    *uuid.UUID `db:"reviewer_id" json:"reviewer_id,omitempty"`
	CoSignerFlow  FlowState  `db:"co_signer_flow" json:"co_signer_flow"`
	ReviewerFlow  FlowState  `db:"reviewer_flow" json:"reviewer_flow"`
	FinalizedAt   *time.Time `db:"finalized_at" json:"finalized_at,omitempty"`
	Misregistered bool       `db:"misregistered" json:"misregistered"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// Finalized reports whether the case has been completed.
func (c *Case) Finalized() bool {
	return c.FinalizedAt != nil
}

// Document represents a document in progress attached to a case.
type Document struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	CaseID      uuid.UUID       `db:"case_id" json:"case_id"`
	Name        string          `db:"name" json:"name"`
	Kind        DocumentKind    `db:"kind" json:"kind"`
	Variant     DocumentVariant `db:"variant" json:"variant"`
	TemplateID  *string         `db:"template_id" json:"template_id,omitempty"`
	ParentID    *uuid.UUID      `db:"parent_id" json:"parent_id,omitempty"`
	CreatorRole CreatorRole     `db:"creator_role" json:"creator_role"`
	Finished    bool            `db:"finished" json:"finished"`
	ContentKey  *string         `db:"content_key" json:"-"`
	CreatedBy   uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
