package domain

import (
	"time"

	"github.com/google/uuid"
)

// TipFeedback records whether a user followed and acknowledged a coach tip.
type TipFeedback struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Followed     bool      `gorm:"not null" json:"followed"`
	Acknowledged bool      `gorm:"not null;default:true" json:"acknowledged"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TipFeedback) TableName() string {
	return "tip_feedback"
}

// FeedbackRequest is the request body for tip feedback.
// @Description Request payload for submitting tip feedback.
type FeedbackRequest struct {
	// Whether the user followed the tip
	Followed bool `json:"followed" example:"true"`
	// Whether the user acknowledged seeing the tip
	Acknowledged *bool `json:"acknowledged,omitempty" example:"true"`
	// Optional trace ID from a predict/coach response, forwarded as an
	// observability score
	TraceID string `json:"trace_id,omitempty"`
	// Optional comment attached to the observability score
	Comment string `json:"comment,omitempty"`
}

// FeedbackResponse reports the outcome of storing feedback. Store
// failures are reported here rather than surfaced as request errors.
type FeedbackResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty"`
}
