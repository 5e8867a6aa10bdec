package repository

import (
	"context"

	"study-service/internal/study/domain"
)

// Repository defines persistence for studies.
type Repository interface {
	// Save persists s and returns the stored representation, which may be s itself.
	Save(ctx context.Context, s *domain.Study) (*domain.Study, error)
}
