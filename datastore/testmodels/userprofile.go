package testmodels

import (
	"github.com/go-openapi/strfmt"
	"github.com/suparena/polyregistry"
	"github.com/suparena/polyregistry/datastore"
)

// Kind names the test entities register under.
const (
	UserProfileKind = "UserProfile"
	AuditEventKind  = "AuditEvent"
)

type UserProfile struct {

	// Timestamp when the profile was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// Display name shown to other users.
	// Required: true
	DisplayName *string `json:"DisplayName"`

	// Contact email for the profile.
	Email *strfmt.Email `json:"Email,omitempty"`

	// Unique identifier for the profile.
	// Required: true
	ID *string `json:"Id"`

	// Free-form tags attached to the profile.
	Tags []string `json:"Tags,omitempty"`

	// Timestamp when the profile was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt"`
}

func (p *UserProfile) EntityKind() string {
	return UserProfileKind
}

func (p *UserProfile) EntityKey() string {
	if p.ID == nil {
		return ""
	}
	return *p.ID
}

// Clone returns an independently owned deep copy.
func (p *UserProfile) Clone(_ polyregistry.Token) (datastore.Entity, error) {
	cp := *p
	cp.CreatedAt = copyPtr(p.CreatedAt)
	cp.DisplayName = copyPtr(p.DisplayName)
	cp.Email = copyPtr(p.Email)
	cp.ID = copyPtr(p.ID)
	cp.UpdatedAt = copyPtr(p.UpdatedAt)
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	return &cp, nil
}

// AuditEvent records one action against an entity.
type AuditEvent struct {
	ID         *string          `json:"Id"`
	Actor      string           `json:"Actor,omitempty"`
	Action     string           `json:"Action,omitempty"`
	Subject    string           `json:"Subject,omitempty"`
	OccurredAt *strfmt.DateTime `json:"OccurredAt"`
}

func (e *AuditEvent) EntityKind() string {
	return AuditEventKind
}

func (e *AuditEvent) EntityKey() string {
	if e.ID == nil {
		return ""
	}
	return *e.ID
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
