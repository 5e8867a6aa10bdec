package domain

import (
	"testing"

	memberdomain "study-service/internal/member/domain"
)

func TestNew(t *testing.T) {
	s := New(10, "테스트")
	if s.Limit != 10 {
		t.Errorf("Limit = %d, want 10", s.Limit)
	}
	if s.Name != "테스트" {
		t.Errorf("Name = %q, want %q", s.Name, "테스트")
	}
	if s.Owner != nil {
		t.Error("Owner should be nil for a new study")
	}
	if s.HasOwner() {
		t.Error("HasOwner should be false for a new study")
	}
}

func TestHasOwner(t *testing.T) {
	var nilStudy *Study
	if nilStudy.HasOwner() {
		t.Error("nil study should not have an owner")
	}
	s := New(10, "go")
	s.Owner = &memberdomain.Member{ID: 1, Email: "keesun@email.com"}
	if !s.HasOwner() {
		t.Error("HasOwner should be true after assigning an owner")
	}
}
