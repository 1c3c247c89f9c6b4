package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/langfuse"
	"github.com/sleepwise/coach-api/internal/repository"
)

// followedScoreName is the Langfuse score attached when feedback carries
// a trace ID from an earlier predict or coach response.
const followedScoreName = "tip_followed"

// FeedbackService records tip feedback and forwards it to observability.
type FeedbackService interface {
	// Submit stores the feedback row and, when a trace ID is present,
	// attaches a score to the originating trace. Store failures are
	// reported in the response payload rather than as errors.
	Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) *domain.FeedbackResponse
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	langfuse     langfuse.Client
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, lf langfuse.Client) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo, langfuse: lf}
}

func (s *feedbackService) Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) *domain.FeedbackResponse {
	acknowledged := true
	if req.Acknowledged != nil {
		acknowledged = *req.Acknowledged
	}

	feedback := &domain.TipFeedback{
		UserID:       userID,
		Followed:     req.Followed,
		Acknowledged: acknowledged,
	}

	resp := &domain.FeedbackResponse{Status: "ok"}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		log.Printf("[feedback] store failed for user %s: %v", userID, err)
		resp.Status = "partial"
		resp.Message = "Feedback received but could not be stored"
	}

	if req.TraceID != "" && s.langfuse != nil && s.langfuse.IsEnabled() {
		value := 0.0
		if req.Followed {
			value = 1.0
		}
		if err := s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
			TraceID: req.TraceID,
			Name:    followedScoreName,
			Value:   value,
			Comment: req.Comment,
		}); err != nil {
			log.Printf("[feedback] score forward failed for trace %s: %v", req.TraceID, err)
		}
	}

	return resp
}
