package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog records who changed what. Written best-effort after the main
// mutation commits; a failed log write never fails the request.
type ActivityLog struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	ActorEmail string         `json:"actor_email" gorm:"index"`
	Action     string         `json:"action" gorm:"not null"` // e.g. "concession.update"
	Entity     string         `json:"entity"`
	EntityID   string         `json:"entity_id"`
	Details    datatypes.JSON `json:"details" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at" gorm:"index"`
}
