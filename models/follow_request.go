package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FollowRequestPending  = "pending"
	FollowRequestAccepted = "accepted"
	FollowRequestRejected = "rejected"
)

// FollowRequest is the persisted proposal for RequesterID to follow
// RequestedID. Only the requested user may accept or reject it, and
// accepted/rejected are terminal. The unique index on the ordered pair
// serializes concurrent issues for the same pair.
type FollowRequest struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	RequesterID string    `gorm:"type:uuid;not null;uniqueIndex:idx_requester_requested" json:"requester"`
	RequestedID string    `gorm:"type:uuid;not null;uniqueIndex:idx_requester_requested" json:"requested"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
}

func (fr *FollowRequest) BeforeCreate(tx *gorm.DB) error {
	if fr.ID == "" {
		fr.ID = uuid.NewString()
	}
	return nil
}
