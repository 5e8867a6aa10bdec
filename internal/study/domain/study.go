package domain

import memberdomain "study-service/internal/member/domain"

// Study is a named group with a member limit and a single owner.
// Owner is nil until the study is created through the study service.
type Study struct {
	Limit int
	Name  string
	Owner *memberdomain.Member
}

// New returns a study without an owner.
func New(limit int, name string) *Study {
	return &Study{Limit: limit, Name: name}
}

// HasOwner reports whether an owner has been assigned.
func (s *Study) HasOwner() bool {
	return s != nil && s.Owner != nil
}
