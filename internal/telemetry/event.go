package telemetry

import (
	"time"

	"github.com/google/uuid"

	"study-service/internal/telemetry/domain"
)

// NewStudyEvent returns an event of type t with a fresh ID and the current UTC time.
func NewStudyEvent(t domain.EventType, memberID int64, studyName string, studyLimit int) *domain.StudyEvent {
	return &domain.StudyEvent{
		ID:         uuid.NewString(),
		Type:       t,
		MemberID:   memberID,
		StudyName:  studyName,
		StudyLimit: studyLimit,
		CreatedAt:  time.Now().UTC(),
	}
}
