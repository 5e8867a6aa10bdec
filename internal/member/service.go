// Package member declares the member capability consumed by the study workflow.
package member

import (
	"context"

	memberdomain "study-service/internal/member/domain"
	studydomain "study-service/internal/study/domain"
)

// Service resolves, validates and notifies members.
type Service interface {
	// FindByID returns the member for id, or nil if not found.
	// It returns an error only for lookup failures, not for unknown ids.
	FindByID(ctx context.Context, id memberdomain.MemberID) (*memberdomain.Member, error)
	// Validate returns an error wrapping memberdomain.ErrInvalidMember when id is not a valid member.
	Validate(ctx context.Context, id memberdomain.MemberID) error
	// NotifyStudy tells interested members about a new study. Fire-and-forget.
	NotifyStudy(ctx context.Context, s *studydomain.Study)
	// NotifyMember sends a notification to m. Fire-and-forget.
	NotifyMember(ctx context.Context, m *memberdomain.Member)
}
