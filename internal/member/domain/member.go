package domain

import "errors"

// ErrInvalidMember is returned by member validation when the member may not take part in a study.
var ErrInvalidMember = errors.New("invalid member")

// MemberID identifies a member.
type MemberID int64

// Valid reports whether id is well-formed. It does not check existence.
func (id MemberID) Valid() bool {
	return id > 0
}

// Member is a person that can own studies.
type Member struct {
	ID    MemberID
	Email string
}
