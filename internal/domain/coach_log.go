package domain

import (
	"time"

	"github.com/google/uuid"
)

// CoachLog records one advice-generator call: the constructed prompt and
// the generator's response. Written on every non-overridden prediction
// for an authenticated user; write failures are swallowed.
type CoachLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Prompt    string    `gorm:"type:text;not null" json:"prompt"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CoachLog) TableName() string {
	return "coach_logs"
}
