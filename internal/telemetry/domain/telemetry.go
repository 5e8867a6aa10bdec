package domain

import "time"

// EventType names a study lifecycle event.
type EventType string

const (
	EventStudyCreated  EventType = "study_created"
	EventStudyRejected EventType = "study_rejected"
)

// StudyEvent is a telemetry record of one study creation attempt.
type StudyEvent struct {
	ID         string
	Type       EventType
	MemberID   int64
	StudyName  string
	StudyLimit int
	OwnerEmail string // empty when rejected
	Reason     string // set for rejections
	CreatedAt  time.Time
}
